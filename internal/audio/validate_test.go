package audio

import "testing"

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "spanish word", text: "mañana", wantErr: false},
		{name: "sentence with punctuation", text: "¡Hola, mundo!", wantErr: false},
		{name: "empty", text: "", wantErr: true},
		{name: "punctuation only", text: "...!?", wantErr: true},
		{name: "digits only", text: "1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
