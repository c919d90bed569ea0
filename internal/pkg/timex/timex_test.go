package timex_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/smartretail/product-api/internal/pkg/timex"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", input: `"5s"`, want: 5 * time.Second},
		{name: "compound", input: `"1m30s"`, want: 90 * time.Second},
		{name: "not a duration", input: `"soon"`, wantErr: true},
		{name: "not a string", input: `5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d timex.Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) = %v, wantErr: %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && d.Duration != tt.want {
				t.Errorf("d.Duration = %v, want: %v", d.Duration, tt.want)
			}
		})
	}
}
