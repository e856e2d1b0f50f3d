package authcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Request field names read from the body and the query.
const (
	fieldCode        = "code"
	fieldRedirectURI = "redirectUri"
)

// maxBodySize bounds body parsing for every supported content type.
const maxBodySize = 1 << 20

// callbackParams is what an attempt reads from the inbound request.
type callbackParams struct {
	Code        string
	RedirectURI string
}

// providerError returns the error the provider reported through the query,
// or nil when there is none.
func providerError(r *http.Request) *ProviderError {
	q := r.URL.Query()
	if q.Get("error") == "" {
		return nil
	}
	return &ProviderError{
		Code:        q.Get("error"),
		Description: q.Get("error_description"),
		URI:         q.Get("error_uri"),
		Reason:      q.Get("error_reason"),
		ErrorCode:   q.Get("error_code"),
	}
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody
}

// readParams extracts the code and redirect URI, preferring body fields over
// query fields of the same name.
func readParams(r *http.Request) (callbackParams, error) {
	body, err := bodyFields(r)
	if err != nil {
		return callbackParams{}, err
	}
	query := r.URL.Query()

	pick := func(key string) string {
		if v := body.Get(key); v != "" {
			return v
		}
		return query.Get(key)
	}

	return callbackParams{
		Code:        pick(fieldCode),
		RedirectURI: pick(fieldRedirectURI),
	}, nil
}

// bodyFields decodes the body by content type. Unknown content types yield
// no fields.
func bodyFields(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return url.Values{}, nil
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	switch mediaType {
	case "application/json":
		return jsonFields(r.Body)
	case "application/x-www-form-urlencoded":
		return formFields(r.Body)
	case "multipart/form-data":
		return multipartFields(r.Body, params["boundary"])
	default:
		return url.Values{}, nil
	}
}

// formFields parses an urlencoded body on its own, so the query string and
// the request method never affect it.
func formFields(body io.Reader) (url.Values, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return values, nil
}

// multipartFields keeps the non-file parts of a multipart body.
func multipartFields(body io.Reader, boundary string) (url.Values, error) {
	if boundary == "" {
		return nil, fmt.Errorf("%w: missing multipart boundary", ErrMalformedBody)
	}
	form, err := multipart.NewReader(io.LimitReader(body, maxBodySize), boundary).ReadForm(maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	defer func() { _ = form.RemoveAll() }()
	return url.Values(form.Value), nil
}

// jsonFields keeps the top-level string members of a JSON object.
func jsonFields(body io.Reader) (url.Values, error) {
	var obj map[string]any
	if err := json.NewDecoder(io.LimitReader(body, maxBodySize)).Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return url.Values{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	values := make(url.Values, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			values.Set(k, s)
		}
	}
	return values, nil
}
