package server

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/adrianliechti/docread/pkg/ledger"
	"github.com/adrianliechti/docread/pkg/pipeline"
	"github.com/adrianliechti/docread/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) handleRecognition(w http.ResponseWriter, r *http.Request) {
	request := pipeline.Request{
		ID: uuid.NewString(),
	}

	if value := r.FormValue("url"); value != "" {
		request.URL = value
		request.Name = pathName(value)
	} else {
		file, header, err := r.FormFile("file")

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		defer file.Close()

		data, err := io.ReadAll(file)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		key := "in/" + request.ID + "/" + header.Filename

		if err := h.Storage.Put(r.Context(), key, storage.File{
			Name:        header.Filename,
			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		}); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		request.Name = header.Filename
		request.Content = data
		request.URL = strings.TrimRight(h.URL, "/") + "/v1/files/" + key
	}

	result, err := h.Pipeline.Run(r.Context(), request)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	writeJson(w, fromResult(result))
}

func (h *Handler) handleRecognitionGet(w http.ResponseWriter, r *http.Request) {
	if h.Ledger == nil {
		writeError(w, http.StatusNotFound, errors.New("ledger not configured"))
		return
	}

	entry, err := h.Ledger.Get(r.Context(), chi.URLParam(r, "id"))

	if errors.Is(err, ledger.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, fromEntry(entry))
}

func (h *Handler) handleRecognitionList(w http.ResponseWriter, r *http.Request) {
	if h.Ledger == nil {
		writeJson(w, []Recognition{})
		return
	}

	entries, err := h.Ledger.List(r.Context(), 100)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := []Recognition{}

	for _, entry := range entries {
		result = append(result, *fromEntry(&entry))
	}

	writeJson(w, result)
}

func (h *Handler) handleFile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	file, err := h.Storage.Open(r.Context(), key)

	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	defer file.Close()

	buffer := make([]byte, 512)
	n, _ := io.ReadFull(file, buffer)

	contentType := mime.TypeByExtension(path.Ext(key))

	if contentType == "" {
		contentType = http.DetectContentType(buffer[:n])
	}

	w.Header().Set("Content-Type", contentType)

	w.Write(buffer[:n])
	io.Copy(w, file)
}

func pathName(value string) string {
	u, err := url.Parse(value)

	if err != nil {
		return ""
	}

	parts := strings.Split(strings.TrimRight(u.Path, "/"), "/")

	return parts[len(parts)-1]
}
