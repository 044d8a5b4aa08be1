package api

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stickanim/animation"
	"stickanim/config"
	"stickanim/encode"
	"stickanim/render"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	scene := config.DefaultScene()
	registry, err := animation.Builtin(scene.Base, scene.Sweep)
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := render.NewRenderer(scene.Style)
	if err != nil {
		t.Fatal(err)
	}
	driver := animation.NewDriver(renderer, encode.NewGIF(scene.Style.Palette(), scene.Delay))

	r := gin.New()
	NewServer(registry, scene, driver).SetupRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
		Data   T      `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return resp.Data
}

func TestGetAnimations(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/v1/animations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d", w.Code)
	}
	list := decode[AnimationListResponse](t, w)
	if list.Total != 3 || len(list.Animations) != 3 {
		t.Fatalf("have %+v", list)
	}
	if list.Animations[1].Name != animation.ShoulderPendulum || list.Animations[1].Frames != 20 {
		t.Errorf("have %+v", list.Animations[1])
	}
}

func TestGetAnimation(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/v1/animations/shoulder_pendulum", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d", w.Code)
	}
	detail := decode[AnimationDetailResponse](t, w)
	if len(detail.Poses) != 20 || len(detail.Angles) != 20 {
		t.Fatalf("have %d poses, %d angles", len(detail.Poses), len(detail.Angles))
	}
	if detail.Angles[10] != 25 || detail.DelayMs != 60 {
		t.Errorf("peak %v, delay %v", detail.Angles[10], detail.DelayMs)
	}
	if detail.Poses[0]["head"] != (PointDTO{X: 256, Y: 90}) {
		t.Errorf("head: have %+v", detail.Poses[0]["head"])
	}
}

func TestGetAnimationNotFound(t *testing.T) {
	for _, path := range []string{"/api/v1/animations/cartwheel", "/api/v1/animations/cartwheel/gif"} {
		if w := do(newTestRouter(t), http.MethodGet, path, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s: have %d, want 404", path, w.Code)
		}
	}
}

func TestRenderGIF(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/v1/animations/shoulder_pendulum/gif", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/gif" {
		t.Errorf("content type: have %q", ct)
	}
	anim, err := gif.DecodeAll(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 20 {
		t.Errorf("frames: have %d, want 20", len(anim.Image))
	}
}

func TestGetBasePose(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/v1/poses/base", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d", w.Code)
	}
	base := decode[BasePoseResponse](t, w)
	if len(base.Joints) != 13 || len(base.Edges) != 12 {
		t.Errorf("have %d joints, %d edges", len(base.Joints), len(base.Edges))
	}
	if base.Edges[0] != (EdgeDTO{"head", "neck"}) {
		t.Errorf("first edge: have %v", base.Edges[0])
	}
}

func TestInterpolate(t *testing.T) {
	body := `{"from": {"head": {"x": 0, "y": 0}}, "to": {"head": {"x": 10, "y": 20}}, "t": 0.5}`
	w := do(newTestRouter(t), http.MethodPost, "/api/v1/poses/interpolate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d: %s", w.Code, w.Body.String())
	}
	got := decode[PoseDTO](t, w)
	if got["head"] != (PointDTO{X: 5, Y: 10}) {
		t.Errorf("have %+v", got)
	}
}

func TestInterpolateErrors(t *testing.T) {
	tests := map[string]string{
		"mismatch":  `{"from": {"head": {"x": 0, "y": 0}}, "to": {"neck": {"x": 1, "y": 1}}, "t": 0.5}`,
		"missing t": `{"from": {"head": {"x": 0, "y": 0}}, "to": {"head": {"x": 1, "y": 1}}}`,
		"bad json":  `{`,
	}
	for name, body := range tests {
		if w := do(newTestRouter(t), http.MethodPost, "/api/v1/poses/interpolate", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: have %d, want 400", name, w.Code)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/api/v1/system/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: have %d", w.Code)
	}
	health := decode[HealthResponse](t, w)
	if health.Status != "healthy" || health.Version == "" {
		t.Errorf("have %+v", health)
	}
}
