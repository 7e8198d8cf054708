package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestPrepareCommand(t *testing.T) {
	tests := []struct {
		name     string
		bufSize  int
		op       uint32
		params   [NumParams]uint32
		payload  []byte
		wantSize int
		wantErr  bool
	}{
		{
			name:     "header only",
			bufSize:  HeaderSize,
			op:       OpGetCalibrationTable,
			wantSize: HeaderSize,
		},
		{
			name:     "with params",
			bufSize:  MaxBufferSize,
			op:       OpHWReset,
			params:   [NumParams]uint32{1, 2, 3, 0xDEADBEEF},
			wantSize: HeaderSize,
		},
		{
			name:     "with payload",
			bufSize:  MaxBufferSize,
			op:       OpUpdateCalib,
			params:   [NumParams]uint32{1},
			payload:  []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			wantSize: HeaderSize + 5,
		},
		{
			name:    "buffer smaller than header",
			bufSize: HeaderSize - 1,
			op:      OpGetCalibrationTable,
			wantErr: true,
		},
		{
			name:    "payload does not fit",
			bufSize: HeaderSize + 2,
			op:      OpUpdateCalib,
			payload: []byte{0x01, 0x02, 0x03},
			wantErr: true,
		},
		{
			name:    "payload exceeds max transfer",
			bufSize: 2 * MaxBufferSize,
			op:      OpUpdateCalib,
			payload: make([]byte, MaxBufferSize),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.bufSize)
			n, err := PrepareCommand(buf, tt.op, tt.params, tt.payload)

			if tt.wantErr {
				if !errors.Is(err, ErrBufferTooSmall) {
					t.Fatalf("error = %v, want ErrBufferTooSmall", err)
				}
				if n != 0 {
					t.Errorf("n = %d, want 0 on failure", n)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if n != tt.wantSize {
				t.Errorf("n = %d, want %d", n, tt.wantSize)
			}

			if n < HeaderSize {
				t.Errorf("n = %d, want at least %d", n, HeaderSize)
			}

			length := binary.LittleEndian.Uint16(buf[0:2])
			if int(length) != n-LengthFieldSize {
				t.Errorf("LEN = %d, want %d", length, n-LengthFieldSize)
			}

			if magic := binary.LittleEndian.Uint16(buf[2:4]); magic != MagicNumber {
				t.Errorf("MAGIC = 0x%04X, want 0x%04X", magic, MagicNumber)
			}

			if op := binary.LittleEndian.Uint32(buf[4:8]); op != tt.op {
				t.Errorf("OPCODE = 0x%02X, want 0x%02X", op, tt.op)
			}

			if !bytes.Equal(buf[HeaderSize:n], tt.payload) && len(tt.payload) > 0 {
				t.Errorf("payload = %v, want %v", buf[HeaderSize:n], tt.payload)
			}
		})
	}
}

func TestPrepareCommandWireBytes(t *testing.T) {
	buf := make([]byte, HeaderSize)
	n, err := PrepareCommand(buf, OpGetCalibrationTable, [NumParams]uint32{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{
		0x14, 0x00, // LEN = 24 - 4
		0xAB, 0xCD, // MAGIC
		0x3D, 0x00, 0x00, 0x00, // OPCODE
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	if !bytes.Equal(buf[:n], want) {
		t.Errorf("frame = % X, want % X", buf[:n], want)
	}
}

func TestCommandRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{
			name: "no payload",
			cmd:  Command{Opcode: OpGetCalibrationTable},
		},
		{
			name: "params and payload",
			cmd: Command{
				Opcode:  OpUpdateCalib,
				Params:  [NumParams]uint32{7, 0, 0xFFFFFFFF, 42},
				Payload: []byte("coefficients"),
			},
		},
		{
			name: "largest payload",
			cmd: Command{
				Opcode:  OpSetDefaultControls,
				Payload: bytes.Repeat([]byte{0x5A}, MaxBufferSize-HeaderSize),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := tt.cmd.Frame()
			if err != nil {
				t.Fatalf("Frame() error: %v", err)
			}

			got, err := ParseCommand(frame)
			if err != nil {
				t.Fatalf("ParseCommand() error: %v", err)
			}

			if got.Opcode != tt.cmd.Opcode {
				t.Errorf("Opcode = 0x%02X, want 0x%02X", got.Opcode, tt.cmd.Opcode)
			}
			if got.Params != tt.cmd.Params {
				t.Errorf("Params = %v, want %v", got.Params, tt.cmd.Params)
			}
			if !bytes.Equal(got.Payload, tt.cmd.Payload) {
				t.Errorf("Payload = %v, want %v", got.Payload, tt.cmd.Payload)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	valid, err := BuildCommand(OpGVD, [NumParams]uint32{}, []byte{0x01})
	if err != nil {
		t.Fatalf("BuildCommand() error: %v", err)
	}

	badMagic := append([]byte(nil), valid...)
	badMagic[2] = 0x00

	badLength := append([]byte(nil), valid...)
	badLength[0] = 0x40

	tests := []struct {
		name   string
		frame  []byte
		errMsg string
	}{
		{name: "too short", frame: valid[:HeaderSize-1], errMsg: "request too short"},
		{name: "bad magic", frame: badMagic, errMsg: "invalid magic number"},
		{name: "bad length", frame: badLength, errMsg: "length mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.frame)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}
}

func TestOpcodeName(t *testing.T) {
	tests := []struct {
		op   uint32
		want string
	}{
		{OpGetCalibrationTable, "GetCalibrationTable"},
		{OpGetIRTemp, "GetIRTemp"},
		{OpBIST, "BIST"},
		{0x99, "opcode 0x99"},
	}

	for _, tt := range tests {
		if got := OpcodeName(tt.op); got != tt.want {
			t.Errorf("OpcodeName(0x%02X) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
