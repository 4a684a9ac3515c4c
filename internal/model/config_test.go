package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfigurationValidate(t *testing.T) {
	valid := BuildConfiguration{K: 31, D: 5, ColorMode: ColorsSequence, Structure: SDSLHybrid}

	tests := []struct {
		name    string
		mutate  func(*BuildConfiguration)
		wantErr string
	}{
		{name: "valid", mutate: func(*BuildConfiguration) {}},
		{name: "zero k", mutate: func(c *BuildConfiguration) { c.K = 0 }, wantErr: "k must be positive"},
		{name: "negative d", mutate: func(c *BuildConfiguration) { c.D = -1 }, wantErr: "d must be positive"},
		{name: "unknown colors", mutate: func(c *BuildConfiguration) { c.ColorMode = "rainbow" }, wantErr: "unknown color mode"},
		{name: "unknown structure", mutate: func(c *BuildConfiguration) { c.Structure = "bloom" }, wantErr: "unknown coloring structure"},
		{name: "manual without file", mutate: func(c *BuildConfiguration) { c.ColorMode = ColorsManual }, wantErr: "color file"},
		{name: "manual with file", mutate: func(c *BuildConfiguration) {
			c.ColorMode = ColorsManual
			c.ColorFile = "colors.txt"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildConfigurationKey(t *testing.T) {
	fw := BuildConfiguration{K: 31, D: 5, ColorMode: ColorsFile, Structure: Roaring}
	rc := fw
	rc.ReverseComplement = true

	assert.Equal(t, "k31-d5-fw-file-colors-roaring", fw.Key())
	assert.Equal(t, "k31-d5-rc-file-colors-roaring", rc.Key())
	assert.NotEqual(t, fw.Key(), fw.WithStructure(SDSLHybrid).Key())
	assert.Equal(t, Roaring, fw.Structure, "WithStructure must not modify the receiver")
}

func TestStructureTypeOther(t *testing.T) {
	assert.Equal(t, Roaring, SDSLHybrid.Other())
	assert.Equal(t, SDSLHybrid, Roaring.Other())
}

func TestColorModeValid(t *testing.T) {
	for _, mode := range ColorModes {
		assert.True(t, mode.Valid(), mode)
	}

	assert.False(t, ColorMode("").Valid())
	assert.False(t, ColorMode("colors").Valid())
}

func TestQueryParameterRowKey(t *testing.T) {
	tests := []struct {
		row  QueryParameterRow
		want string
	}{
		{row: QueryParameterRow{Threshold: 0.9, IgnoreUnknown: false, ReverseComplement: true}, want: "0.9-no-yes"},
		{row: QueryParameterRow{Threshold: 1, IgnoreUnknown: true}, want: "1-yes-no"},
		{row: QueryParameterRow{Threshold: 0.05}, want: "0.05-no-no"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.Key())
		})
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "yes", want: true},
		{in: " Y ", want: true},
		{in: "true", want: true},
		{in: "no"},
		{in: "N"},
		{in: ""},
		{in: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYesNo(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "0.00001", FormatThreshold(0.00001))
	assert.Equal(t, "1", FormatThreshold(1.0))
	assert.Equal(t, "0.7", FormatThreshold(0.70))
}
