package scaffold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/appforge/cli/internal/errors"
)

func TestValidateProjectName(t *testing.T) {
	t.Run("accepts valid names", func(t *testing.T) {
		valid := []string{
			"my-app",
			"app",
			"a",
			"my_app",
			"app-2",
			"0app",
			"my-app_2-final",
		}
		for _, name := range valid {
			assert.NoError(t, ValidateProjectName(name), "name %q", name)
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		invalid := []string{
			"",
			"My-App",
			"my app",
			"my.app",
			"my/app",
			"app!",
			"приложение",
			"app\n",
		}
		for _, name := range invalid {
			err := ValidateProjectName(name)
			require.Error(t, err, "name %q", name)
			assert.True(t, errors.Is(err, ferrors.ErrValidation), "name %q should fail validation", name)
		}
	})
}

func TestApplyCrossFeatureRules(t *testing.T) {
	t.Run("auth forces database", func(t *testing.T) {
		fs, notices := ApplyCrossFeatureRules(FeatureSet{Auth: true})

		assert.True(t, fs.Database)
		assert.True(t, fs.Auth)
		assert.Len(t, notices, 1)
	})

	t.Run("is idempotent", func(t *testing.T) {
		fs, _ := ApplyCrossFeatureRules(FeatureSet{Auth: true})
		again, notices := ApplyCrossFeatureRules(fs)

		assert.Equal(t, fs, again)
		assert.Empty(t, notices)
	})

	t.Run("leaves other sets untouched", func(t *testing.T) {
		for _, fs := range []FeatureSet{
			{},
			{Database: true},
			{ReactScan: true},
			{Database: true, Auth: true, ReactScan: true},
		} {
			out, notices := ApplyCrossFeatureRules(fs)
			assert.Equal(t, fs, out)
			assert.Empty(t, notices)
		}
	})
}

func TestFeatureSetEnabled(t *testing.T) {
	assert.Empty(t, FeatureSet{}.Enabled())
	assert.Equal(t, []string{FeatureDatabase}, FeatureSet{Database: true}.Enabled())
	assert.Equal(t,
		[]string{FeatureDatabase, FeatureAuth, FeatureReactScan},
		FeatureSet{Database: true, Auth: true, ReactScan: true}.Enabled())
}
