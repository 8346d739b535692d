package gsheets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/sheets/v4"
)

const installedCreds = `{"installed":{"client_id":"cid.apps.googleusercontent.com","client_secret":"secret","redirect_uris":["urn:ietf:wg:oauth:2.0:oob"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`

func TestOAuthConfigFromJSON(t *testing.T) {
	cfg, err := OAuthConfigFromJSON([]byte(installedCreds))
	require.NoError(t, err)
	assert.Equal(t, "cid.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, []string{sheets.SpreadsheetsScope}, cfg.Scopes)

	_, err = OAuthConfigFromJSON([]byte(`{}`))
	assert.Error(t, err)
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenFile)
	require.NoError(t, SaveToken(path, &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var tok oauth2.Token
	require.NoError(t, json.Unmarshal(data, &tok))
	assert.Equal(t, "at", tok.AccessToken)
	assert.Equal(t, "rt", tok.RefreshToken)
}
