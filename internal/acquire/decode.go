package acquire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"pingdash/internal/models"
	"pingdash/internal/validation"
	pkgerrors "pingdash/pkg/errors"
)

var validate = validation.New("json")

func decodeObject(body []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", pkgerrors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidPayload, err)
	}
	return nil
}

func decodeSystemInfo(body []byte) (models.SystemInfo, error) {
	var info models.SystemInfo
	if err := decodeObject(body, &info); err != nil {
		return models.SystemInfo{}, err
	}
	return info, nil
}

func decodeNetworkInfo(body []byte) (models.NetworkInfo, error) {
	var info models.NetworkInfo
	if err := decodeObject(body, &info); err != nil {
		return models.NetworkInfo{}, err
	}
	return info, nil
}

func decodePingResults(body []byte) (models.PingResultSet, error) {
	var set models.PingResultSet
	if err := decodeObject(body, &set); err != nil {
		return models.PingResultSet{}, err
	}
	if err := validate.Struct(&set); err != nil {
		return models.PingResultSet{}, err
	}
	return set, nil
}
