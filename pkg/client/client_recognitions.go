package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/adrianliechti/docread/server"
)

type RecognitionService struct {
	Options []RequestOption
}

func NewRecognitionService(opts ...RequestOption) RecognitionService {
	return RecognitionService{
		Options: opts,
	}
}

type Recognition = server.Recognition

type RecognitionRequest struct {
	Name   string
	Reader io.Reader

	// URL submits a remote document instead of uploading one.
	URL string
}

func (r *RecognitionService) New(ctx context.Context, input RecognitionRequest, opts ...RequestOption) (*Recognition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	if input.URL != "" {
		w.WriteField("url", input.URL)
	} else {
		file, err := w.CreateFormFile("file", input.Name)

		if err != nil {
			return nil, err
		}

		if _, err := io.Copy(file, input.Reader); err != nil {
			return nil, err
		}
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/recognitions", &data)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Recognition

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *RecognitionService) Get(ctx context.Context, id string, opts ...RequestOption) (*Recognition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/v1/recognitions/"+id, nil)

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Recognition

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *RecognitionService) List(ctx context.Context, opts ...RequestOption) ([]Recognition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/v1/recognitions", nil)

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result []Recognition

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

func convertError(resp *http.Response) error {
	var response server.ErrorResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err == nil && response.Error != "" {
		return errors.New(response.Error)
	}

	return errors.New(resp.Status)
}
