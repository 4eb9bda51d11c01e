package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request LookupRequest
		wantErr bool
	}{
		{name: "ValidCity", request: LookupRequest{City: "London"}},
		{name: "CityWithSpaces", request: LookupRequest{City: "  Los Angeles "}},
		{name: "EmptyCity", request: LookupRequest{City: ""}, wantErr: true},
		{name: "BlankCity", request: LookupRequest{City: " \t "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "city cannot be empty")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLookupRequest_NormalizeCity(t *testing.T) {
	request := LookupRequest{City: "  New York  "}
	request.NormalizeCity()
	assert.Equal(t, "New York", request.City)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "live", SourceLive.String())
	assert.Equal(t, "partial", SourcePartial.String())
	assert.Equal(t, "fallback", SourceFallback.String())
	assert.Equal(t, "unknown", SourceUnknown.String())
}

func TestIconCategory_IsValid(t *testing.T) {
	for _, icon := range []IconCategory{IconSunny, IconPartlyCloudy, IconCloudy, IconRainy, IconSnowy} {
		assert.True(t, icon.IsValid(), icon)
	}
	assert.False(t, IconCategory("thunder").IsValid())
	assert.False(t, IconCategory("").IsValid())
}
