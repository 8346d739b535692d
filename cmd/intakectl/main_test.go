package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteRepo "university-assistant/internal/intake/repository/sqlite"
)

func TestRootCmd_Definition(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "intakectl", root.Use)

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"chat", "route", "sheets-auth"}, names)
}

func TestChatCmd_Flags(t *testing.T) {
	flags := newChatCmd().Flags()

	db := flags.Lookup("db")
	require.NotNil(t, db)
	assert.Equal(t, "", db.DefValue)

	collection := flags.Lookup("collection")
	require.NotNil(t, collection)
	assert.Equal(t, defaultCollection, collection.DefValue)

	verbose := flags.Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestRunChat_FullConversation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "intake.db")
	in := strings.NewReader("My name is Asha Rao\n\n2nd year\nMy query is I need a scholarship form\nthanks\n")
	var out bytes.Buffer

	err := runChat(context.Background(), in, &out, chatOptions{dbPath: dbPath, collection: defaultCollection})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "iMu> Hi, My name is iMu."))
	assert.True(t, strings.HasPrefix(lines[1], "iMu> Thanks, Asha Rao. Which education year"))
	assert.True(t, strings.HasPrefix(lines[2], "iMu> Thanks, Asha Rao. Could you please briefly describe"))
	assert.Equal(t, "iMu> Thank you Asha Rao. Your query has been submitted to the Admission/Scholarship Unit. They will reach out to you.", lines[3])
	assert.Equal(t, "iMu> Your query is already submitted.", lines[4])

	db, err := sqliteRepo.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	var query, unit string
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM student_queries").Scan(&count))
	require.NoError(t, db.QueryRow("SELECT student_query, routed_unit FROM student_queries").Scan(&query, &unit))
	assert.Equal(t, 1, count)
	assert.Equal(t, "I need a scholarship form", query)
	assert.Equal(t, "admission_scholarship", unit)
}

func TestRouteCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"route", "My", "query", "is", "hostel", "room", "allocation"})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "name:     -\n")
	assert.Contains(t, got, "year:     -\n")
	assert.Contains(t, got, "query:    hostel room allocation\n")
	assert.Contains(t, got, "unit:     student_welfare (Student Welfare Unit)\n")
	assert.Contains(t, got, "greeting: false\n")
}

func TestRouteCmd_RequiresText(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"route"})

	assert.Error(t, cmd.Execute())
}

func TestRunSheetsAuth(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing credentials", func(t *testing.T) {
		err := runSheetsAuth(context.Background(), strings.NewReader(""), &bytes.Buffer{}, sheetsAuthOptions{
			credentialsPath: filepath.Join(dir, "missing.json"),
			tokenPath:       filepath.Join(dir, "token.json"),
		})
		assert.Error(t, err)
	})

	t.Run("prints consent url before reading the code", func(t *testing.T) {
		creds := filepath.Join(dir, "credentials.json")
		require.NoError(t, os.WriteFile(creds, []byte(`{"installed":{"client_id":"cid","client_secret":"secret","redirect_uris":["urn:ietf:wg:oauth:2.0:oob"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`), 0600))

		var out bytes.Buffer
		err := runSheetsAuth(context.Background(), strings.NewReader(""), &out, sheetsAuthOptions{
			credentialsPath: creds,
			tokenPath:       filepath.Join(dir, "token.json"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "authorization code")
		assert.Contains(t, out.String(), "https://accounts.google.com/o/oauth2/auth?")
		assert.Contains(t, out.String(), "client_id=cid")
		assert.NoFileExists(t, filepath.Join(dir, "token.json"))
	})
}
