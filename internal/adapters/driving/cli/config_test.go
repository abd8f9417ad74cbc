package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// fakeConfigStore adds Init to the in-memory store.
type fakeConfigStore struct {
	*memory.ConfigStore
	path    string
	inits   []bool
	initErr error
}

func (f *fakeConfigStore) Init(force bool) error {
	f.inits = append(f.inits, force)
	return f.initErr
}

func (f *fakeConfigStore) Path() string {
	return f.path
}

func useFakeConfigStore(t *testing.T, store *fakeConfigStore) *string {
	t.Helper()
	var opened string
	SetConfigStoreFactory(func(path string) ConfigStore {
		opened = path
		return store
	})
	t.Cleanup(func() {
		SetConfigStoreFactory(nil)
		resetFlags()
	})
	return &opened
}

func TestConfigCmd_SkipsInit(t *testing.T) {
	_, ok := configCmd.Annotations[skipInitAnnotation]
	assert.True(t, ok)
}

func TestConfigInitCmd(t *testing.T) {
	store := &fakeConfigStore{ConfigStore: memory.NewConfigStore(domain.DefaultSettings()), path: "sercha-site.toml"}
	useFakeConfigStore(t, store)

	out, err := execute(t, "config", "init")

	require.NoError(t, err)
	assert.Equal(t, []bool{false}, store.inits)
	assert.Contains(t, out, "Wrote sercha-site.toml")
}

func TestConfigInitCmd_Force(t *testing.T) {
	store := &fakeConfigStore{ConfigStore: memory.NewConfigStore(domain.DefaultSettings()), path: "site.toml"}
	opened := useFakeConfigStore(t, store)

	_, err := execute(t, "--config", "site.toml", "config", "init", "--force")

	require.NoError(t, err)
	assert.Equal(t, []bool{true}, store.inits)
	assert.Equal(t, "site.toml", *opened)
}

func TestConfigInitCmd_Error(t *testing.T) {
	store := &fakeConfigStore{
		ConfigStore: memory.NewConfigStore(domain.DefaultSettings()),
		initErr:     errors.New("file exists"),
	}
	useFakeConfigStore(t, store)

	_, err := execute(t, "config", "init")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing config: file exists")
}

func TestConfigShowCmd(t *testing.T) {
	s := domain.DefaultSettings()
	s.Site.BaseURL = "https://example.com"
	s.Server.Addr = ":9090"
	store := &fakeConfigStore{ConfigStore: memory.NewConfigStore(s), path: "sercha-site.toml"}
	useFakeConfigStore(t, store)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: sercha-site.toml")
	assert.Contains(t, out, "base_url: https://example.com")
	assert.Contains(t, out, "root: content")
	assert.Contains(t, out, "results: 10 (max 50)")
	assert.Contains(t, out, "max_query_length: 200")
	assert.Contains(t, out, "addr: :9090")
}

func TestConfigCmd_NoStore(t *testing.T) {
	defer resetFlags()

	_, err := execute(t, "config", "show")

	assert.EqualError(t, err, "config store not configured")
}
