package calibration

// Parameters holds the intrinsic and extrinsic calibration of the IR camera,
// the IR projector and the RGB camera. The layout matches the wire format:
// 112 little-endian float32 values, 448 bytes.
type Parameters struct {
	// Rmax is the maximum range of the depth sensor
	Rmax float32

	// Kc is the intrinsic matrix of the IR camera
	Kc [3][3]float32

	// Distc are the forward distortion parameters of the IR camera
	Distc [5]float32

	// Invdistc are the inverse distortion parameters of the IR camera
	Invdistc [5]float32

	// Pp is the projector projection matrix
	Pp [3][4]float32

	// Kp is the intrinsic matrix of the projector
	Kp [3][3]float32

	// Rp is the rotation from the IR camera to the projector
	Rp [3][3]float32

	// Tp is the translation from the IR camera to the projector
	Tp [3]float32

	// Distp are the forward distortion parameters of the projector
	Distp [5]float32

	// Invdistp are the inverse distortion parameters of the projector
	Invdistp [5]float32

	// Pt is the IR to RGB (texture mapping) transformation matrix
	Pt [3][4]float32

	// Kt is the intrinsic matrix of the RGB camera
	Kt [3][3]float32

	// Rt is the rotation from the IR camera to the RGB camera
	Rt [3][3]float32

	// Tt is the translation from the IR camera to the RGB camera
	Tt [3]float32

	// Distt are the forward distortion parameters of the RGB camera
	Distt [5]float32

	// Invdistt are the inverse distortion parameters of the RGB camera
	Invdistt [5]float32

	// QV are the depth conversion coefficients
	QV [6]float32
}

// TemperatureData holds the temperatures recorded when the unit was calibrated.
type TemperatureData struct {
	LiguriaTemp float32
	IRTemp      float32
	AmbientTemp float32
}

// ThermalLoopParams configures the thermal compensation loop.
type ThermalLoopParams struct {
	IRThermalLoopEnable float32
	TimeOutA            float32
	TimeOutB            float32
	TimeOutC            float32
	TransitionTemp      float32
	TempThreshold       float32
	HFOVsensitivity     float32
	FcxSlopeA           float32
	FcxSlopeB           float32
	FcxSlopeC           float32
	FcxOffset           float32
	UxSlopeA            float32
	UxSlopeB            float32
	UxSlopeC            float32
	UxOffset            float32
	LiguriaTempWeight   float32
	IrTempWeight        float32
	AmbientTempWeight   float32
	Param1              float32
	Param2              float32
	Param3              float32
	Param4              float32
	Param5              float32
}

// TesterData is the per-unit thermal metadata recorded by the factory tester.
type TesterData struct {
	// TableValidation is the raw validity tag of the table
	TableValidation int16

	// TableVersion is the raw version field of the table
	TableVersion int16

	TemperatureData   TemperatureData
	ThermalLoopParams ThermalLoopParams
}

// Table is a decoded calibration table.
type Table struct {
	// Version is the decoded table version
	Version int

	// Parameters are the camera calibration parameters
	Parameters Parameters

	// Tester carries the table header and, when HasThermal is set, thermal data.
	// Thermal fields are zero otherwise.
	Tester TesterData

	// HasThermal reports whether thermal tester data was present in the table
	HasThermal bool

	// Legacy is set for version 13 tables
	Legacy bool

	// LegacyValues is the flat float array of a version 13 table, zero otherwise
	LegacyValues [LegacyFloatCount]float32

	// Truncated reports that the table was shorter than its layout;
	// the missing bytes were decoded as zero.
	Truncated bool
}
