package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"review-sentiment-service/internal/core/domain"
	"review-sentiment-service/internal/core/services"
	"review-sentiment-service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pageTemplate = `{{if .prediction}}Sentiment: {{.prediction}}{{end}}{{if .error}}Error: {{.error}}{{end}}`

func setupRouter() (*testutil.MockVectorizer, *testutil.MockClassifier, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	vec := new(testutil.MockVectorizer)
	clf := new(testutil.MockClassifier)

	svc := services.NewSentimentService(vec, clf)
	h := New(svc)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("index.html").Parse(pageTemplate)))
	h.RegisterRoutes(r)
	api := r.Group("/api/v1/sentiment")
	h.RegisterAPIRoutes(api)

	return vec, clf, r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReviewForm(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Sentiment:")
}

func TestClassifyReview_Positive(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", "loved it").Return([]float64{0.5}, nil)
	clf.On("Predict", mock.Anything).Return(1, nil)

	w := postForm(r, url.Values{"review": {"loved it"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sentiment: positive")
}

func TestClassifyReview_Negative(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", "awful").Return([]float64{0.5}, nil)
	clf.On("Predict", mock.Anything).Return(0, nil)

	w := postForm(r, url.Values{"review": {"awful"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sentiment: negative")
}

func TestClassifyReview_MissingFieldBehavesAsEmpty(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", "").Return([]float64{0}, nil)
	clf.On("Predict", mock.Anything).Return(0, nil)

	w := postForm(r, url.Values{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sentiment: negative")
	vec.AssertCalled(t, "Transform", "")
}

func TestClassifyReview_PipelineError(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", mock.Anything).Return([]float64{1}, nil)
	clf.On("Predict", mock.Anything).Return(0, domain.ErrFeatureDimension)

	w := postForm(r, url.Values{"review": {"anything"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error:")
	assert.NotContains(t, w.Body.String(), "Sentiment:")
}

func TestCreatePrediction(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", "what a great film").Return([]float64{0.7}, nil)
	clf.On("Predict", mock.Anything).Return(1, nil)

	body, _ := json.Marshal(map[string]string{"text": "what a great film"})
	req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "what a great film", resp["text"])
	assert.Equal(t, float64(1), resp["label"])
	assert.Equal(t, "positive", resp["sentiment"])
}

func TestCreatePrediction_MissingText(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMissingReviewText.Error())
}

func TestCreatePrediction_EmptyTextIsClassified(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", "").Return([]float64{0}, nil)
	clf.On("Predict", mock.Anything).Return(0, nil)

	req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "negative", resp["sentiment"])
}

func TestCreatePrediction_MalformedBody(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", strings.NewReader(`{"text":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePrediction_PipelineError(t *testing.T) {
	vec, clf, r := setupRouter()

	vec.On("Transform", mock.Anything).Return([]float64{1, 2, 3}, nil)
	clf.On("Predict", mock.Anything).Return(0, domain.ErrFeatureDimension)

	req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", strings.NewReader(`{"text":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

// Sentiment is always one of exactly two values, whatever label the
// model produces.
func TestCreatePrediction_SentimentSetIsClosed(t *testing.T) {
	for _, label := range []int{0, 1, 2, -3} {
		vec, clf, r := setupRouter()

		vec.On("Transform", mock.Anything).Return([]float64{0.1}, nil)
		clf.On("Predict", mock.Anything).Return(label, nil)

		req, _ := http.NewRequest("POST", "/api/v1/sentiment/predictions", strings.NewReader(`{"text":"some review"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, []interface{}{"positive", "negative"}, resp["sentiment"])
	}
}
