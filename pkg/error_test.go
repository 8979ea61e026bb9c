package pkg

import (
	"errors"
	"testing"
)

func TestResponse_String(t *testing.T) {
	tests := []struct {
		response Response
		want     string
	}{
		{ResponseACK, "ack"},
		{ResponseNAK, "nak"},
		{Response(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.response.String(); got != tt.want {
				t.Errorf("Response.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponse_Ack(t *testing.T) {
	if !ResponseACK.Ack() {
		t.Error("ResponseACK.Ack() = false, want true")
	}
	if ResponseNAK.Ack() {
		t.Error("ResponseNAK.Ack() = true, want false")
	}
}

func TestResponse_Err(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		kind     error
		wantErr  error
	}{
		{"ack address", ResponseACK, ErrAddressNAK, nil},
		{"ack data", ResponseACK, ErrDataNAK, nil},
		{"nak address", ResponseNAK, ErrAddressNAK, ErrAddressNAK},
		{"nak register", ResponseNAK, ErrRegisterNAK, ErrRegisterNAK},
		{"nak data", ResponseNAK, ErrDataNAK, ErrDataNAK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.response.Err(tt.kind)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Response.Err() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Response.Err() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
