package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"tourbook/internal/config"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/validator"
	"tourbook/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// newTestRouter renders errors like the server does and signs user in when
// it is set.
func newTestRouter(user *models.User) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.Use(middleware.ErrorHandler(config.EnvProduction, zap.NewNop()))
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserKey, user)
			c.Next()
		})
	}
	return r
}

func testUser(role string) *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Laura Wilson",
		Email: "laura@example.com",
		Photo: models.DefaultPhoto,
		Role:  role,
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	buf, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(buf)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// dataDoc returns body.data.data as an object.
func dataDoc(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope: %s", w.Body.String())
	doc, ok := data["data"].(map[string]interface{})
	require.True(t, ok, "missing data.data: %s", w.Body.String())
	return doc
}

type formFile struct {
	field       string
	contentType string
	content     []byte
}

// multipartBody builds a multipart form and returns it with its content
// type.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="upload"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
