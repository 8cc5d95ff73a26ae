package datauri

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		mime    string
		data    string
		wantErr error
	}{
		{name: "video", in: "data:video/mp4;base64,aGVsbG8=", mime: "video/mp4", data: "hello"},
		{name: "with params", in: "data:video/webm;codecs=vp9;base64,aGk=", mime: "video/webm", data: "hi"},
		{name: "not a data uri", in: "https://example.com/a.mp4", wantErr: ErrNotDataURI},
		{name: "no comma", in: "data:video/mp4;base64", wantErr: ErrNotDataURI},
		{name: "not base64", in: "data:video/mp4,hello", wantErr: ErrNotBase64},
		{name: "no mime", in: "data:;base64,aGk=", wantErr: ErrMissingMIME},
		{name: "empty payload", in: "data:video/mp4;base64,", wantErr: ErrEmptyPayload},
		{name: "bad payload", in: "data:video/mp4;base64,***", wantErr: ErrNotBase64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.MIMEType != tc.mime || string(got.Data) != tc.data {
				t.Fatalf("unexpected result %q %q", got.MIMEType, got.Data)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	if got := Encode("image/jpeg", []byte("hello")); got != "data:image/jpeg;base64,aGVsbG8=" {
		t.Fatalf("unexpected encoding %q", got)
	}
	d := &DataURI{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	back, err := Parse(d.String())
	if err != nil || back.MIMEType != "image/png" || len(back.Data) != 3 {
		t.Fatalf("round trip failed: %+v (%v)", back, err)
	}
}
