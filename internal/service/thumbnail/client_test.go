package thumbnail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/utils/datauri"
)

type quietLogger struct{}

func (quietLogger) Debug(string, ...interface{}) {}
func (quietLogger) Info(string, ...interface{})  {}
func (quietLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string, token Token) *Client {
	return NewClient(Options{BaseURL: baseURL, Token: token, Logger: quietLogger{}})
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotQuery, gotUA, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, NoToken).Generate(context.Background(), &Request{UserPrompt: "red car at dusk"})

	if res.Source != SourceGenerated {
		t.Fatalf("expected generated image, got %+v", res)
	}
	uri, err := datauri.Parse(res.ImageURI)
	if err != nil {
		t.Fatalf("result is not a data URI: %v", err)
	}
	if uri.MIMEType != "image/png" || string(uri.Data) != "\x89PNG" {
		t.Fatalf("unexpected payload %q %q", uri.MIMEType, uri.Data)
	}
	if gotPath != "/prompt/red%20car%20at%20dusk" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	for _, want := range []string{"width=1280", "height=720", "model=flux", "nologo=true"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("unexpected User-Agent %q", gotUA)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization must be absent without a token, got %q", gotAuth)
	}
}

func TestGenerate_BearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg"))
	}))
	defer srv.Close()

	newTestClient(srv.URL, BearerToken("secret")).Generate(context.Background(), &Request{VideoTitle: "Chess"})
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected Authorization %q", gotAuth)
	}
}

func TestGenerate_DefaultContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A nil value stops net/http from sniffing a content type
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("raw image bytes"))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, NoToken).Generate(context.Background(), &Request{VideoTitle: "Chess"})
	if !strings.HasPrefix(res.ImageURI, "data:image/jpeg;base64,") {
		t.Fatalf("expected JPEG default, got %q", res.ImageURI)
	}
}

func TestGenerate_Fallbacks(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		res := newTestClient(srv.URL, NoToken).Generate(context.Background(), &Request{VideoTitle: "Chess"})
		if res.ImageURI != PlaceholderURI || res.Source != SourcePlaceholder || res.FailureReason == "" {
			t.Fatalf("expected placeholder, got %+v", res)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		res := newTestClient(srv.URL, NoToken).Generate(context.Background(), &Request{VideoTitle: "Chess"})
		if res.ImageURI != PlaceholderURI {
			t.Fatalf("expected placeholder, got %+v", res)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		res := newTestClient(url, NoToken).Generate(context.Background(), &Request{VideoTitle: "Chess"})
		if res.ImageURI != PlaceholderURI {
			t.Fatalf("expected placeholder, got %+v", res)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	if got := BuildPrompt(&Request{VideoTitle: "Chess openings", UserPrompt: "  "}); got != "A thumbnail for Chess openings" {
		t.Fatalf("unexpected synthesized prompt %q", got)
	}
	if got := BuildPrompt(&Request{VideoTitle: "Chess", UserPrompt: "neon knight"}); got != "neon knight" {
		t.Fatalf("user prompt must be used verbatim, got %q", got)
	}
}

func TestBearerToken_Empty(t *testing.T) {
	if BearerToken("  ").Present() {
		t.Fatalf("blank credential must be absent")
	}
	if NoToken.Present() {
		t.Fatalf("NoToken must be absent")
	}
}

func TestURL_QueryOrderAndEscaping(t *testing.T) {
	c := NewClient(Options{BaseURL: "https://img.example", Logger: quietLogger{}})

	got := c.URL("C++ & tips: 100% (fast)!")
	want := "https://img.example/prompt/C%2B%2B%20%26%20tips%3A%20100%25%20(fast)!?width=1280&height=720&model=flux&nologo=true"
	if got != want {
		t.Fatalf("unexpected URL\n got: %s\nwant: %s", got, want)
	}
}

func TestGenerate_ReservedCharactersReachServerEscaped(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL, NoToken).Generate(context.Background(), &Request{UserPrompt: "C++ a=b@c$"})
	if res.Source != SourceGenerated {
		t.Fatalf("expected generated image, got %+v", res)
	}
	if gotPath != "/prompt/C%2B%2B%20a%3Db%40c%24" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "width=1280&height=720&model=flux&nologo=true" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}
