package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	programs []catalog.ProgramInput
	sectors  []catalog.SectorInput
	err      error
}

func (r *recorder) Seed(programs []catalog.ProgramInput, sectors []catalog.SectorInput) error {
	r.programs = programs
	r.sectors = sectors
	return r.err
}

const sample = `
programs:
  - name: Analisis y Desarrollo de Software
    code: adso
    type: TECNOLOGO
  - name: Sistemas
    code: SIS
    active: false
sectors:
  - name: Tecnologia
    description: Software y servicios
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Programs, 2)
	assert.Equal(t, catalog.ProgramTecnologo, f.Programs[0].Type)
	assert.Equal(t, catalog.ProgramTecnico, f.Programs[1].Type)
	require.NotNil(t, f.Programs[1].Active)
	assert.False(t, *f.Programs[1].Active)
	assert.Nil(t, f.Programs[0].Active)
	require.Len(t, f.Sectors, 1)
	assert.Equal(t, "Tecnologia", f.Sectors[0].Name)
}

func TestParseRejectsIncompleteEntries(t *testing.T) {
	_, err := Parse([]byte("programs:\n  - name: Sin codigo\n"))
	assert.ErrorContains(t, err, "program #1")

	_, err = Parse([]byte("sectors:\n  - description: x\n"))
	assert.ErrorContains(t, err, "sector #1")

	_, err = Parse([]byte("unknown: 1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("empty path is a no-op", func(t *testing.T) {
		r := &recorder{}
		_, err := Load("", r)
		require.NoError(t, err)
		assert.Nil(t, r.programs)
	})

	t.Run("seeds parsed contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
		r := &recorder{}
		_, err := Load(path, r)
		require.NoError(t, err)
		assert.Len(t, r.programs, 2)
		assert.Len(t, r.sectors, 1)
	})

	t.Run("seeder failure is returned", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
		_, err := Load(path, &recorder{err: errors.New("db down")})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &recorder{})
		assert.Error(t, err)
	})
}
