package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"stress-detection/configs"
	"stress-detection/internal/domain/models"
	"stress-detection/internal/infrastructure/artifacts"
	"stress-detection/internal/infrastructure/prediction"
	"stress-detection/pkg/logger"
)

func testStore() *artifacts.Store {
	return artifacts.NewStore(
		models.ScalerParameters{
			{Name: "psd_theta", Mean: 42.0, Scale: 38.0},
			{Name: "psd_alpha", Mean: 5.2, Scale: 2.1},
			{Name: "psd_beta", Mean: 4.0, Scale: 2.5},
			{Name: "eda", Mean: 35.0, Scale: 25.0},
			{Name: "hrv", Mean: 6.0, Scale: 2.0},
		},
		models.LabelSet{"normal", "anxious", "stressed", "ptsd"},
	)
}

// newTestEngine 构造带完整路由的测试引擎
func newTestEngine(store *artifacts.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := configs.DefaultConfig()
	service := prediction.NewService(store, &cfg.Classifier, logger.Default())
	handler := NewPredictHandler(service, logger.Default())

	engine := gin.New()
	engine.GET("/health", handler.Health)
	engine.GET("/model_info", handler.ModelInfo)
	engine.GET("/example", handler.Example)
	engine.POST("/predict", handler.Predict)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestPredict_DocumentedExample(t *testing.T) {
	engine := newTestEngine(testStore())

	body := `{"psd_theta":80.5,"psd_alpha":6.355,"psd_beta":8.08897,"eda":80.054613,"hrv":7.03}`
	recorder := doRequest(t, engine, http.MethodPost, "/predict", body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result models.PredictionResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if result.Prediction != models.LabelStressed {
		t.Errorf("expected prediction stressed, got %q", result.Prediction)
	}
	if result.Method != models.MethodScalerBased {
		t.Errorf("unexpected method tag: %q", result.Method)
	}
	if result.ConfidenceScores[models.LabelStressed] != 0.8 {
		t.Errorf("expected stressed confidence 0.8, got %v", result.ConfidenceScores[models.LabelStressed])
	}

	sum := 0.0
	for _, v := range result.ConfidenceScores {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-3 {
		t.Errorf("confidence scores sum to %v, expected ~1.0", sum)
	}

	if result.InputFeatures["psd_theta"] != 80.5 {
		t.Errorf("input features not echoed: %v", result.InputFeatures)
	}
	if len(result.ScaledFeatures) != models.FeatureCount {
		t.Errorf("expected %d scaled features, got %d", models.FeatureCount, len(result.ScaledFeatures))
	}
}

func TestPredict_MissingFeaturesNamed(t *testing.T) {
	engine := newTestEngine(testStore())

	body := `{"psd_theta":80.5,"psd_beta":8.08897,"hrv":7.03}`
	recorder := doRequest(t, engine, http.MethodPost, "/predict", body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}

	// 错误消息必须点名全部缺失的特征
	response := recorder.Body.String()
	for _, name := range []string{"psd_alpha", "eda"} {
		if !strings.Contains(response, name) {
			t.Errorf("expected %q named in error, got %s", name, response)
		}
	}
}

func TestPredict_InvalidTypeNamed(t *testing.T) {
	engine := newTestEngine(testStore())

	body := `{"psd_theta":80.5,"psd_alpha":6.355,"psd_beta":"high","eda":80.054613,"hrv":7.03}`
	recorder := doRequest(t, engine, http.MethodPost, "/predict", body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}

	if !strings.Contains(recorder.Body.String(), "psd_beta") {
		t.Errorf("expected psd_beta named in error, got %s", recorder.Body.String())
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	engine := newTestEngine(testStore())

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{not json"},
		{name: "empty object", body: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, engine, http.MethodPost, "/predict", tt.body)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", recorder.Code)
			}
		})
	}
}

func TestPredict_DegradedMode(t *testing.T) {
	// 工件未加载：预测返回500而非崩溃
	engine := newTestEngine(nil)

	body := `{"psd_theta":80.5,"psd_alpha":6.355,"psd_beta":8.08897,"eda":80.054613,"hrv":7.03}`
	recorder := doRequest(t, engine, http.MethodPost, "/predict", body)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}

func TestPredict_DegenerateScale(t *testing.T) {
	store := artifacts.NewStore(
		models.ScalerParameters{
			{Name: "psd_theta", Mean: 42.0, Scale: 0},
			{Name: "psd_alpha", Mean: 5.2, Scale: 2.1},
			{Name: "psd_beta", Mean: 4.0, Scale: 2.5},
			{Name: "eda", Mean: 35.0, Scale: 25.0},
			{Name: "hrv", Mean: 6.0, Scale: 2.0},
		},
		models.LabelSet{"normal", "anxious", "stressed", "ptsd"},
	)
	engine := newTestEngine(store)

	body := `{"psd_theta":80.5,"psd_alpha":6.355,"psd_beta":8.08897,"eda":80.054613,"hrv":7.03}`
	recorder := doRequest(t, engine, http.MethodPost, "/predict", body)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}

	// 无穷大绝不出现在响应中
	if strings.Contains(recorder.Body.String(), "Inf") {
		t.Errorf("infinite value leaked to client: %s", recorder.Body.String())
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(testStore())

	recorder := doRequest(t, engine, http.MethodGet, "/health", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if response["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", response["status"])
	}
	if _, ok := response["timestamp"]; !ok {
		t.Error("expected timestamp in health response")
	}
}

func TestHealth_Degraded(t *testing.T) {
	// 工件加载失败后健康检查报告degraded而非崩溃
	engine := newTestEngine(nil)

	recorder := doRequest(t, engine, http.MethodGet, "/health", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if response["status"] != "degraded" {
		t.Errorf("expected degraded status, got %v", response["status"])
	}
}

func TestModelInfo(t *testing.T) {
	engine := newTestEngine(testStore())

	recorder := doRequest(t, engine, http.MethodGet, "/model_info", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var info models.ModelInfo
	if err := json.Unmarshal(recorder.Body.Bytes(), &info); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if !info.ModelLoaded {
		t.Error("expected model_loaded=true")
	}
	if len(info.Features) != models.FeatureCount {
		t.Errorf("unexpected features: %v", info.Features)
	}
	if len(info.Classes) != models.LabelCount {
		t.Errorf("unexpected classes: %v", info.Classes)
	}
}

func TestModelInfo_NotLoaded(t *testing.T) {
	engine := newTestEngine(nil)

	recorder := doRequest(t, engine, http.MethodGet, "/model_info", "")

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}

func TestExample(t *testing.T) {
	engine := newTestEngine(testStore())

	recorder := doRequest(t, engine, http.MethodGet, "/example", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	single, ok := response["single_prediction"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected single_prediction object, got %v", response)
	}

	exampleBody, ok := single["body"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected body object, got %v", single)
	}

	// 示例请求体包含全部五个必需特征
	for _, name := range models.FeatureNames {
		if _, ok := exampleBody[name]; !ok {
			t.Errorf("example body missing feature %q", name)
		}
	}
}

func TestExample_RoundTrip(t *testing.T) {
	// 示例接口返回的请求体必须可以直接用于预测接口
	engine := newTestEngine(testStore())

	recorder := doRequest(t, engine, http.MethodGet, "/example", "")

	var response struct {
		SinglePrediction struct {
			Body map[string]interface{} `json:"body"`
		} `json:"single_prediction"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	bodyBytes, err := json.Marshal(response.SinglePrediction.Body)
	if err != nil {
		t.Fatalf("marshal example body: %v", err)
	}

	predictRecorder := doRequest(t, engine, http.MethodPost, "/predict", string(bodyBytes))
	if predictRecorder.Code != http.StatusOK {
		t.Fatalf("example body rejected by predict: %d %s", predictRecorder.Code, predictRecorder.Body.String())
	}

	var result models.PredictionResult
	if err := json.Unmarshal(predictRecorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal predict response: %v", err)
	}
	if result.Prediction != models.LabelStressed {
		t.Errorf("expected documented example to predict stressed, got %q", result.Prediction)
	}
}
