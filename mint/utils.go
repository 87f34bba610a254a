package main

import (
	"encoding/json"
	"strconv"

	"slot_machine/sdk"
)

func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

func FromJSON[T any](data string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func payloadOrEmpty(payload *string) string {
	if payload == nil {
		return ""
	}
	return *payload
}

func require(cond bool, msg string) {
	if !cond {
		sdk.Abort(msg)
	}
}

func abortOnError(err error, context string) {
	if err == nil {
		return
	}
	if context == "" {
		sdk.Abort(err.Error())
	}
	sdk.Abort(context + ": " + err.Error())
}

// returnJsonResponse wraps a call result in {"success":..,"data":..}.
func returnJsonResponse(success bool, data map[string]interface{}) *string {
	out := ToJSON(struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data,omitempty"`
	}{success, data}, "response")
	return &out
}

func getSenderAddress() string {
	return sdk.GetEnv().Sender.Address.String()
}

func getTxID() string {
	return sdk.GetEnv().TxId
}
