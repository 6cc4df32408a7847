package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelanni/diagnostic/internal/bank"
	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/report"
	"github.com/pavelanni/diagnostic/internal/results"
)

func TestNormalizeBasePath(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"/":      "",
		"quiz":   "/quiz",
		"/quiz/": "/quiz",
		"/a/b":   "/a/b",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeBasePath(in), "input %q", in)
	}
}

func TestLoadBank(t *testing.T) {
	b, err := loadBank("")
	require.NoError(t, err)
	assert.Equal(t, 20, b.Len())

	_, err = loadBank(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id": "x"}]`), 0o600))
	_, err = loadBank(bad)
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`{"math-1": "a", "unknown-9": "b"}`), 0o600))

	for _, format := range []string{"json", "text"} {
		t.Run(format, func(t *testing.T) {
			out := filepath.Join(dir, "report."+format)
			cmd := rootCmd()
			cmd.SetArgs([]string{
				"report",
				"--answers", answersPath,
				"--name", "Marie Curie",
				"--date", "2026-06-01",
				"--format", format,
				"--output", out,
				"--log-level", "error",
			})
			require.NoError(t, cmd.Execute())

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			if format == "text" {
				assert.Contains(t, string(data), "Student: Marie Curie")
				assert.NotContains(t, string(data), "\x1b[", "files are written without colors")
				return
			}

			var export model.ReportExport
			require.NoError(t, json.Unmarshal(data, &export))
			assert.Equal(t, "Marie Curie", export.Student)
			assert.Equal(t, "2026-06-01", export.Date)
			assert.Equal(t, 20, export.Results.Overall.Total)
			assert.Equal(t, 60, export.Results.TotalStudyHours)
		})
	}
}

func TestWriteTextStripsColorsWhenNotATerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")
	t.Setenv("TTY_FORCE", "0")
	require.NoError(t, appI18n.Init("en"))

	export := report.Build("Marie", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		results.Calculate(bank.Default(), nil), "")
	require.Contains(t, report.RenderText(context.Background(), export, report.ColorTheme()), "\x1b[",
		"color theme emits escape sequences")

	var buf bytes.Buffer
	require.NoError(t, writeText(context.Background(), &buf, export, report.ColorTheme()))
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Student: Marie")
}

func TestReportCommandErrors(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`{}`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"missing answers flag", []string{"report"}},
		{"bad format", []string{"report", "--answers", answersPath, "--format", "pdf", "--output", filepath.Join(dir, "x")}},
		{"bad date", []string{"report", "--answers", answersPath, "--date", "June 1"}},
		{"missing file", []string{"report", "--answers", filepath.Join(dir, "nope.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetArgs(append(tt.args, "--log-level", "error"))
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			assert.Error(t, cmd.Execute())
		})
	}
}

func TestServeUntilDoneDrainsInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
		_, _ = io.WriteString(w, "done")
	})}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- serveUntilDone(ctx, srv, ln, 5*time.Second) }()

	body := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			body <- err.Error()
			return
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		body <- string(data)
	}()

	<-started
	cancel()
	require.NoError(t, <-errc)
	assert.True(t, finished.Load(), "server stopped before the in-flight request completed")
	assert.Equal(t, "done", <-body)
}

func TestServeUntilDoneTimeout(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- serveUntilDone(ctx, srv, ln, 50*time.Millisecond) }()
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-started
	cancel()
	err = <-errc
	close(release)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServeWaitsForSlowAdvisor(t *testing.T) {
	llmStarted := make(chan struct{}, 1)
	var llmDone atomic.Bool
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/models":
			_, _ = io.WriteString(w, `{"object":"list","data":[]}`)
		case "/v1/chat/completions":
			llmStarted <- struct{}{}
			time.Sleep(500 * time.Millisecond)
			llmDone.Store(true)
			_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,`+
				`"message":{"role":"assistant","content":"{\"note\":\"Keep going\"}"},"finish_reason":"stop"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer fake.Close()

	addr := freeAddr(t)
	base := "http://" + addr
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := rootCmd()
	cmd.SetArgs([]string{
		"serve",
		"--addr", addr,
		"--secure-cookies=false",
		"--llm-url", fake.URL + "/v1",
		"--log-level", "error",
	})
	errc := make(chan error, 1)
	go func() { errc <- cmd.ExecuteContext(ctx) }()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	require.Eventually(t, func() bool {
		resp, err := client.Get(base + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	u, err := url.Parse(base + "/")
	require.NoError(t, err)
	var token string
	for _, c := range jar.Cookies(u) {
		if c.Name == "csrf_token" {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)

	form := url.Values{"name": {"Ada"}, "csrf_token": {token}}
	resp, err := client.Post(base+"/start", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	page := make(chan string, 1)
	go func() {
		resp, err := client.Get(base + "/results")
		if err != nil {
			page <- err.Error()
			return
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		page <- string(data)
	}()

	<-llmStarted
	cancel()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	assert.True(t, llmDone.Load(), "serve returned before the in-flight results page finished")
	assert.Contains(t, <-page, "Keep going")
}
