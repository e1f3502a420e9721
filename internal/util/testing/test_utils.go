package test_utils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           interface{}
	AuthHeader     string
	ContentType    string
	ExpectedStatus int
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) Response {
	t.Helper()

	var bodyReader io.Reader
	contentType := options.ContentType

	switch body := options.Body.(type) {
	case nil:
	case string:
		bodyReader = bytes.NewBufferString(body)
		if contentType == "" {
			contentType = "application/json"
		}
	case []byte:
		bodyReader = bytes.NewBuffer(body)
	default:
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		bodyReader = bytes.NewBuffer(raw)
		contentType = "application/json"
	}

	request := httptest.NewRequest(options.Method, options.URL, bodyReader)
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if options.AuthHeader != "" {
		request.Header.Set("Authorization", options.AuthHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if options.ExpectedStatus != 0 {
		assert.Equal(
			t,
			options.ExpectedStatus,
			recorder.Code,
			"unexpected status for %s %s: %s",
			options.Method,
			options.URL,
			recorder.Body.String(),
		)
	}

	return Response{
		StatusCode: recorder.Code,
		Body:       recorder.Body.Bytes(),
		Headers:    recorder.Header(),
	}
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	body interface{},
	expectedStatus int,
) Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           body,
		AuthHeader:     authHeader,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	body interface{},
	expectedStatus int,
	out interface{},
) {
	t.Helper()

	resp := MakePostRequest(t, router, url, authHeader, body, expectedStatus)
	assert.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	expectedStatus int,
) Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthHeader:     authHeader,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	expectedStatus int,
	out interface{},
) {
	t.Helper()

	resp := MakeGetRequest(t, router, url, authHeader, expectedStatus)
	assert.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	expectedStatus int,
) Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "DELETE",
		URL:            url,
		AuthHeader:     authHeader,
		ExpectedStatus: expectedStatus,
	})
}

// MakeMultipartRequest uploads a single file under the given field name.
func MakeMultipartRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	fieldName string,
	filename string,
	content []byte,
	expectedStatus int,
) Response {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	part, err := writer.CreateFormFile(fieldName, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           buffer.Bytes(),
		AuthHeader:     authHeader,
		ContentType:    writer.FormDataContentType(),
		ExpectedStatus: expectedStatus,
	})
}
