package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultAPIURL is the API-Ninjas animals endpoint
const DefaultAPIURL = "https://api.api-ninjas.com/v1/animals"

// AnimalFetcher loads animal records from the API or a local data file
type AnimalFetcher struct {
	decoders []RecordDecoder
	client   *http.Client
	apiURL   string
	dataPath string
}

// NewAnimalFetcher creates a fetcher with the default decoders.
// A zero timeout leaves the HTTP client without a deadline.
func NewAnimalFetcher(apiURL, dataPath string, timeout time.Duration) *AnimalFetcher {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	f := &AnimalFetcher{
		client:   &http.Client{Timeout: timeout},
		apiURL:   apiURL,
		dataPath: dataPath,
	}

	// Register decoders (most specific first)
	f.AddDecoder(&YAMLDecoder{})
	f.AddDecoder(&JSONDecoder{}) // fallback

	return f
}

// AddDecoder adds a decoder to the chain
func (f *AnimalFetcher) AddDecoder(decoder RecordDecoder) {
	f.decoders = append(f.decoders, decoder)
}

// Fetch returns the animals matching animalName. With useLocalFile every
// record of the data file is returned and the name is not consulted.
func (f *AnimalFetcher) Fetch(animalName, credential string, useLocalFile bool) ([]AnimalRecord, error) {
	if useLocalFile {
		return f.LoadFile(f.dataPath)
	}

	if strings.TrimSpace(animalName) == "" {
		return nil, newError("fetch", KindInvalidInput, "", errors.New("animal name cannot be empty"))
	}
	return f.FetchAPI(animalName, credential)
}

// FetchAPI queries the animals endpoint for animalName
func (f *AnimalFetcher) FetchAPI(animalName, credential string) ([]AnimalRecord, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, newError("fetch", KindAuth, "",
			errors.New("API key required: use --api-key flag or API_KEY environment variable"))
	}

	endpoint, err := url.Parse(f.apiURL)
	if err != nil {
		return nil, newError("fetch", KindNetwork, f.apiURL, fmt.Errorf("parsing API URL: %w", err))
	}
	query := endpoint.Query()
	query.Set("name", animalName)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, newError("fetch", KindNetwork, f.apiURL, fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("X-Api-Key", credential)
	req.Header.Set("Accept", "application/json")

	debugLog("requesting animals", "url", f.apiURL, "name", animalName)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, newError("fetch", KindNetwork, f.apiURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, newError("fetch", KindAuth, f.apiURL, &HTTPError{StatusCode: resp.StatusCode, URL: f.apiURL})
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, newError("fetch", KindNetwork, f.apiURL, &HTTPError{StatusCode: resp.StatusCode, URL: f.apiURL})
	}

	records, err := f.decode(f.apiURL, resp.Header.Get("Content-Type"), resp.Body)
	if err != nil {
		return nil, newError("fetch", KindDataFormat, f.apiURL, err)
	}
	return records, nil
}

// LoadFile reads and decodes a local data file
func (f *AnimalFetcher) LoadFile(path string) ([]AnimalRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError("load data", KindFile, path, errors.New("data file not found"))
		}
		return nil, newError("load data", KindFile, path, err)
	}
	defer file.Close()

	records, err := f.decode(path, "", file)
	if err != nil {
		return nil, newError("load data", KindDataFormat, path, err)
	}
	return records, nil
}

// decode hands the content to the first decoder that accepts it
func (f *AnimalFetcher) decode(source, contentType string, r io.Reader) ([]AnimalRecord, error) {
	for _, decoder := range f.decoders {
		if decoder.CanHandle(source, contentType) {
			return decoder.Decode(r)
		}
	}
	return nil, fmt.Errorf("no decoder found for %s", source)
}
