package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormInputSetMutatesSingleField(t *testing.T) {
	f := NewFormInput()
	require.NoError(t, f.Set(FieldLocation, "Pune"))
	require.NoError(t, f.Set(FieldCropType, "Wheat"))

	require.NoError(t, f.Set(FieldLandArea, "10"))

	assert.Equal(t, "Pune", f.Get(FieldLocation))
	assert.Equal(t, "Wheat", f.Get(FieldCropType))
	assert.Equal(t, "10", f.Get(FieldLandArea))
	assert.Equal(t, "", f.Get(FieldSoilCondition))
	assert.Equal(t, 3, f.Revision())
}

func TestFormInputRejectsUnknownField(t *testing.T) {
	f := NewFormInput()
	err := f.Set("tractor_count", "2")
	require.Error(t, err)
	assert.Equal(t, 0, f.Revision())
}

func TestFormInputSnapshotIsCopy(t *testing.T) {
	f := NewFormInput()
	require.NoError(t, f.Set(FieldLocation, "Pune"))

	snap := f.Snapshot()
	snap[FieldLocation] = "Nashik"

	assert.Equal(t, "Pune", f.Get(FieldLocation))
}

func TestNormalizeLowercasesEnumsAndParsesArea(t *testing.T) {
	f := NewFormInput()
	require.NoError(t, f.Set(FieldLocation, "Pune"))
	require.NoError(t, f.Set(FieldLandArea, "10"))
	require.NoError(t, f.Set(FieldSoilCondition, "Loamy"))
	require.NoError(t, f.Set(FieldCropType, "Wheat"))

	norm, err := f.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Pune", norm.Location)
	assert.Equal(t, 10.0, norm.LandArea)
	assert.Equal(t, "loamy", norm.SoilCondition)
	assert.Equal(t, "wheat", norm.CropType)
}

func TestNormalizeRejectsBadArea(t *testing.T) {
	for _, area := range []string{"", "ten", "NaN", "Inf"} {
		f := NewFormInput()
		_ = f.Set(FieldLandArea, area)
		_ = f.Set(FieldSoilCondition, "Clay")
		_ = f.Set(FieldCropType, "Rice")

		_, err := f.Normalize()
		assert.Error(t, err, "area=%q", area)
	}
}

func TestNormalizeRequiresEnumFields(t *testing.T) {
	f := NewFormInput()
	_ = f.Set(FieldLandArea, "5")
	_ = f.Set(FieldCropType, "Rice")

	_, err := f.Normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soil_condition")
}
