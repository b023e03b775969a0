package run_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"

	"github.com/arthur-debert/mwbotctl/pkg/commands/run"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><section><h2>Intro</h2><p>Hi</p></section></body></html>`

func serve(t *testing.T, gotPath *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotPath = r.URL.Path
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, ws *testutil.Workspace, restURL string, mode os.FileMode) {
	t.Helper()
	content := "api_url = \"" + restURL + "/api.php\"\n" +
		"rest_url = \"" + restURL + "\"\n\n[auth]\nusername = \"bot1\"\noauth2_token = \"tok\"\n"
	require.NoError(t, os.MkdirAll(ws.ConfigDir, 0700))
	require.NoError(t, os.WriteFile(ws.ConfigFile(), []byte(content), mode))
	require.NoError(t, os.Chmod(ws.ConfigFile(), mode))
}

func TestRunDefaultPage(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	var gotPath string
	srv := serve(t, &gotPath)
	writeConfig(t, ws, srv.URL, 0600)

	result, err := run.Run(context.Background(), run.Options{HTTPClient: srv.Client(), UserAgent: "mwbotctl/test"})
	require.NoError(t, err)

	assert.Equal(t, "/v1/page/Bulgaria/html", gotPath)
	assert.Equal(t, "bot1", result.Username)
	assert.Equal(t, ws.ConfigFile(), result.ConfigPath)
	assert.Equal(t, []string{"Intro"}, result.Page.Headings())
}

func TestRunPageFlag(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	var gotPath string
	srv := serve(t, &gotPath)
	writeConfig(t, ws, srv.URL, 0600)

	_, err := run.Run(context.Background(), run.Options{
		Flags:      map[string]string{"page": "Sofia", "timeout": "5s"},
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, "/v1/page/Sofia/html", gotPath)
}

func TestRunRefusesLoosePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	ws := testutil.NewWorkspace(t)
	var gotPath string
	srv := serve(t, &gotPath)
	writeConfig(t, ws, srv.URL, 0640)

	_, err := run.Run(context.Background(), run.Options{HTTPClient: srv.Client()})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission), "got %v", err)
	assert.Empty(t, gotPath, "no request should be sent")
}
