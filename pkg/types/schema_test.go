package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaForKnownModules(t *testing.T) {
	for _, name := range ModuleNames {
		t.Run(name, func(t *testing.T) {
			s, err := SchemaFor(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Module)
			assert.NotEmpty(t, s.Worksheet)
			assert.NotEmpty(t, s.Columns)
		})
	}
}

func TestSchemaForUnknownModule(t *testing.T) {
	_, err := SchemaFor("Warehouse")
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestKindOf(t *testing.T) {
	s, err := SchemaFor(ModuleProduction)
	require.NoError(t, err)

	assert.Equal(t, ColumnNumeric, s.KindOf(ColQty))
	assert.Equal(t, ColumnStatus, s.KindOf(ColStatus))
	assert.Equal(t, ColumnDate, s.KindOf(ColDate))
	// Undeclared columns read as plain text.
	assert.Equal(t, ColumnText, s.KindOf("Extra"))
}

func TestDefaultValue(t *testing.T) {
	assert.Equal(t, "0", ColumnNumeric.DefaultValue())
	assert.Equal(t, StatusPending, ColumnStatus.DefaultValue())
	assert.Equal(t, "", ColumnText.DefaultValue())
	assert.Equal(t, "", ColumnDate.DefaultValue())
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusPending, NormalizeStatus(""))
	assert.Equal(t, StatusComplete, NormalizeStatus(StatusComplete))
	assert.Equal(t, "Custom", NormalizeStatus("Custom"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(""))
	assert.True(t, IsActive(StatusShipped))
	assert.False(t, IsActive(StatusComplete))
}
