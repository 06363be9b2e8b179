package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(StaticConfig(srv.URL)), srv
}

func TestSearchDecodesResults(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/q/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"name":"Trattoria","location":"Rome","foods":[{"food_name":"Carbonara","food_price":12.5,"ingredients":["egg","guanciale"]}]}]}`))
	}))
	results, err := c.Search(context.Background(), "egg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Trattoria" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if len(results[0].Foods) != 1 || results[0].Foods[0].Price != 12.5 {
		t.Fatalf("unexpected foods: %+v", results[0].Foods)
	}
}

func TestSearchCoercesNonArrayResults(t *testing.T) {
	for _, body := range []string{`{}`, `{"results":null}`, `{"results":"nope"}`, `{"results":{"a":1}}`} {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		results, err := c.Search(context.Background(), "x")
		if err != nil {
			t.Fatalf("body %s: unexpected error: %v", body, err)
		}
		if results == nil || len(results) != 0 {
			t.Fatalf("body %s: want empty non-nil result set, got %#v", body, results)
		}
	}
}

func TestSearchDispatchesEmptyQuery(t *testing.T) {
	dispatched := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dispatched = true
		w.Write([]byte(`{"results":[]}`))
	}))
	if _, err := c.Search(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dispatched {
		t.Fatalf("empty query must still round-trip to the server")
	}
}

func TestListRestaurants(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"restaurants":[{"id":1,"name":"A","schedule":"09:00-17:00"},{"id":2,"name":"B"}]}`))
	}))
	got, err := c.ListRestaurants(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].Name != "B" {
		t.Fatalf("unexpected restaurants: %+v", got)
	}
}

func TestCreateRestaurant(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"restaurant":{"id":17,"name":"A"}}`))
	}))
	id, err := c.CreateRestaurant(context.Background(), menu.NewRestaurant{
		Name: "A", Location: "L", Schedule: "09:00-17:00", URL: "http://a", Cuisine: "thai",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 17 {
		t.Fatalf("unexpected id %d", id)
	}
}

func TestCreateRestaurantRequiresAllFields(t *testing.T) {
	c := New(StaticConfig("http://unreachable.invalid"))
	if _, err := c.CreateRestaurant(context.Background(), menu.NewRestaurant{Name: "A"}); err == nil {
		t.Fatalf("expected missing-field error before dispatch")
	}
}

func TestAvgPricesErrorPayloadIsNil(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"no menu for restaurant"}`))
	}))
	summary, err := c.AvgPrices(context.Background(), 3)
	if err != nil {
		t.Fatalf("error payload should degrade to nil, got err %v", err)
	}
	if summary != nil {
		t.Fatalf("expected nil summary, got %+v", summary)
	}
}

func TestAvgPricesDecodesStringyNumbers(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"avg_food_price":"12.345","min_food_price":8,"max_food_price":21.5}`))
	}))
	summary, err := c.AvgPrices(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary == nil {
		t.Fatalf("expected summary")
	}
	if v := summary.AvgValue(); v < 12.34 || v > 12.35 {
		t.Fatalf("unexpected avg %v", v)
	}
	if summary.MinValue() != 8 || summary.MaxValue() != 21.5 {
		t.Fatalf("unexpected min/max %v/%v", summary.MinValue(), summary.MaxValue())
	}
}

func TestServerErrorClassified(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaboom", http.StatusInternalServerError)
	}))
	if _, err := c.ListRestaurants(context.Background()); !errors.Is(err, ErrServer) {
		t.Fatalf("want ErrServer, got %v", err)
	}
}

func TestUnreachableClassified(t *testing.T) {
	c := New(StaticConfig("http://127.0.0.1:1"))
	if _, err := c.ListRestaurants(context.Background()); !errors.Is(err, ErrUnreachable) {
		t.Fatalf("want ErrUnreachable, got %v", err)
	}
}

func TestMalformedClassified(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	if _, err := c.MenuVersion(context.Background(), 1); !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestUploadMenuSendsMultipart(t *testing.T) {
	var gotID, gotName string
	var gotBytes []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		gotID = r.FormValue("restaurant_id")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		gotName = header.Filename
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		gotBytes = buf[:n]
	}))
	err := c.UploadMenu(context.Background(), 9, "menu.pdf", strings.NewReader("%PDF-1.7 stuff"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "9" || gotName != "menu.pdf" || !strings.HasPrefix(string(gotBytes), "%PDF-") {
		t.Fatalf("unexpected upload fields id=%q name=%q head=%q", gotID, gotName, gotBytes)
	}
}

func TestUploadMenuRejectsNonPDFBeforeSend(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("non-PDF upload must not reach the server")
	}))
	err := c.UploadMenu(context.Background(), 9, "menu.txt", strings.NewReader("hello"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("want ErrNotPDF, got %v", err)
	}
}

func TestUploadMenuSurfacesErrorText(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "parse failed", http.StatusBadRequest)
	}))
	err := c.UploadMenu(context.Background(), 9, "menu.pdf", strings.NewReader("%PDF-1.7"))
	if !errors.Is(err, ErrServer) {
		t.Fatalf("want ErrServer, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse failed") {
		t.Fatalf("error should carry the server text, got %v", err)
	}
}
