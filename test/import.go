package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// UploadFile builds a multipart body with content as the form file "file".
//
// The body and a map for the HTTP request headers are returned.
func UploadFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filename)
	require.Nil(t, err)

	_, err = w.Write(content)
	require.Nil(t, err)
	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
