package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnkushinDaniil/flyscan/entity/format"
	"github.com/AnkushinDaniil/flyscan/entity/mode"
)

func TestValidate(t *testing.T) {
	sweep := Sweep{Min: 0.1, Max: 1, Steps: 10}

	tests := []struct {
		name    string
		params  Parameters
		wantErr bool
	}{
		{"text report needs no sweep", Parameters{Mode: mode.Blur, Format: format.Text}, false},
		{"theta needs no sweep", Parameters{Mode: mode.Theta, Format: format.Csv}, false},
		{"blur chart", Parameters{Mode: mode.Blur, Format: format.HTML, Sweep: sweep}, false},
		{"acquisition png", Parameters{Mode: mode.Acquisition, Format: format.Png, Sweep: Sweep{Min: 0, Max: 2, Steps: 5}}, false},
		{"unknown mode", Parameters{Mode: mode.Mode(7)}, true},
		{"unknown format", Parameters{Format: format.Format(7)}, true},
		{"one step", Parameters{Format: format.Csv, Sweep: Sweep{Min: 0.1, Max: 1, Steps: 1}}, true},
		{"reversed range", Parameters{Format: format.Csv, Sweep: Sweep{Min: 1, Max: 0.1, Steps: 10}}, true},
		{"negative min", Parameters{Format: format.Csv, Sweep: Sweep{Min: -1, Max: 1, Steps: 10}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
