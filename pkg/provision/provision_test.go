package provision_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/mwbotctl/pkg/auth"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/paths"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
	"github.com/arthur-debert/mwbotctl/pkg/provision"
	"github.com/arthur-debert/mwbotctl/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	configDir    = "/home/bot/.config"
	templatePath = "/work/mwbot_template.toml"
)

var configFile = filepath.Join(configDir, "mwbot.toml")

func newRequest(t *testing.T, method auth.Method) provision.Request {
	t.Helper()
	req, err := provision.NewRequest("bot1", method, "https://x/api", "https://x/rest")
	require.NoError(t, err)
	return req
}

func newProvisioner(t *testing.T, fsys *testutil.MemoryFS) *provision.Provisioner {
	t.Helper()
	p, err := paths.NewWithConfigDir(configDir)
	require.NoError(t, err)
	h := permissions.NewHardener(fsys, permissions.Capability{OwnerOnlyModes: true})
	return provision.New(fsys, p, h)
}

func TestProvision(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.AddFile(templatePath, testutil.FullTemplate, 0644)

	result, err := newProvisioner(t, fsys).Provision(context.Background(),
		newRequest(t, auth.Password("s3cr3t")), provision.Options{TemplatePath: templatePath})

	require.NoError(t, err)
	assert.Equal(t, provision.StateDone, result.State)
	assert.Equal(t, configFile, result.Path)
	assert.True(t, result.Written)
	assert.True(t, result.Hardened)
	assert.Equal(t, []string{"api_url", "rest_url", "username", "password", "oauth2_token"}, result.Placeholders)

	content, err := fsys.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `password = "s3cr3t"`)
	assert.Contains(t, string(content), `oauth2_token = ""`)

	info, err := fsys.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestProvisionTokenLeavesPasswordSlotEmpty(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.AddFile(templatePath, testutil.FullTemplate, 0644)

	_, err := newProvisioner(t, fsys).Provision(context.Background(),
		newRequest(t, auth.Token("tok")), provision.Options{TemplatePath: templatePath})
	require.NoError(t, err)

	content, err := fsys.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `password = ""`)
	assert.Contains(t, string(content), `oauth2_token = "tok"`)
}

func TestProvisionIdempotent(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.AddFile(templatePath, testutil.FullTemplate, 0644)
	prov := newProvisioner(t, fsys)
	req := newRequest(t, auth.Password("s3cr3t"))
	opts := provision.Options{TemplatePath: templatePath}

	_, err := prov.Provision(context.Background(), req, opts)
	require.NoError(t, err)
	first, err := fsys.ReadFile(configFile)
	require.NoError(t, err)

	_, err = prov.Provision(context.Background(), req, opts)
	require.NoError(t, err)
	second, err := fsys.ReadFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProvisionFailures(t *testing.T) {
	boom := stderrors.New("boom")

	tests := []struct {
		name        string
		template    string
		setup       func(fsys *testutil.MemoryFS)
		wantCode    errors.ErrorCode
		wantWritten bool
	}{
		{
			name:     "missing template",
			wantCode: errors.ErrTemplateNotFound,
		},
		{
			name:     "malformed template",
			template: `user = "{user}"`,
			wantCode: errors.ErrPlaceholderMismatch,
		},
		{
			name:     "filled template is not TOML",
			template: "api_url = {api_url}\n",
			wantCode: errors.ErrConfigParse,
		},
		{
			name:     "config dir cannot be created",
			template: testutil.FullTemplate,
			setup: func(fsys *testutil.MemoryFS) {
				fsys.FailOn(testutil.OpMkdirAll, configDir, boom)
			},
			wantCode: errors.ErrDirCreate,
		},
		{
			name:     "write fails",
			template: testutil.FullTemplate,
			setup: func(fsys *testutil.MemoryFS) {
				fsys.FailOn(testutil.OpWriteFile, configFile, boom)
			},
			wantCode: errors.ErrFileWrite,
		},
		{
			name:     "harden fails after write",
			template: testutil.FullTemplate,
			setup: func(fsys *testutil.MemoryFS) {
				fsys.FailOn(testutil.OpChmod, configFile, boom)
			},
			wantCode:    errors.ErrPermission,
			wantWritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewMemoryFS()
			if tt.template != "" {
				fsys.AddFile(templatePath, tt.template, 0644)
			}
			if tt.setup != nil {
				tt.setup(fsys)
			}

			result, err := newProvisioner(t, fsys).Provision(context.Background(),
				newRequest(t, auth.Password("pw")), provision.Options{TemplatePath: templatePath})

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, provision.StateFailed, result.State)
			assert.Equal(t, tt.wantWritten, result.Written)
			assert.Equal(t, tt.wantWritten, fsys.Exists(configFile))
			if tt.wantWritten {
				assert.Contains(t, err.Error(), "was written")
			}
		})
	}
}

func TestProvisionDryRun(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.AddFile(templatePath, testutil.FullTemplate, 0644)

	result, err := newProvisioner(t, fsys).Provision(context.Background(),
		newRequest(t, auth.Password("pw")), provision.Options{TemplatePath: templatePath, DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, provision.StateFilled, result.State)
	assert.False(t, result.Written)
	assert.Zero(t, fsys.WriteCount())
}

func TestProvisionCancelled(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.AddFile(templatePath, testutil.FullTemplate, 0644)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newProvisioner(t, fsys).Provision(ctx,
		newRequest(t, auth.Password("pw")), provision.Options{TemplatePath: templatePath})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Written)
	assert.Zero(t, fsys.WriteCount())
}

func TestProvisionRealFilesystem(t *testing.T) {
	w := testutil.NewWorkspace(t)
	w.WriteFile(paths.TemplateFileName, testutil.FullTemplate)

	p, err := paths.New()
	require.NoError(t, err)
	fsys := filesystem.NewOS()
	prov := provision.New(fsys, p, permissions.NewHardener(fsys, permissions.Detect()))

	result, err := prov.Provision(context.Background(), newRequest(t, auth.Password("s3cr3t")), provision.Options{})
	require.NoError(t, err)
	assert.Equal(t, w.ConfigFile(), result.Path)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(w.ConfigFile())
		require.NoError(t, err)
		assert.Zero(t, info.Mode().Perm()&0077, "group/other must have no access")
	}
}
