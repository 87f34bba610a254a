//go:build !test

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(account *string, asset *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(amount *string, asset *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(to *string, amount *string, asset *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

func Log(s string) {
	log(&s)
}

func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

func GetEnv() Env {
	arg := ""
	raw := getEnv(&arg)
	var env Env
	if raw == nil {
		Abort("env unavailable")
	}
	if err := json.Unmarshal([]byte(*raw), &env); err != nil {
		Abort("failed to decode env: " + err.Error())
	}
	return env
}

func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance returns the contract-tracked L1 balance of account.
func GetBalance(account Address, asset Asset) int64 {
	a := account.String()
	as := asset.String()
	ptr := getBalance(&a, &as)
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		Abort("invalid balance returned by host")
	}
	return v
}

// HiveDraw pulls amount from the sender into the contract. The sender must
// have authorised it with a transfer.allow intent.
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends amount from the contract to another account.
func HiveTransfer(to Address, amount int64, asset Asset) {
	t := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&t, &amt, &as)
}

// ContractCall invokes method on another contract and returns its result.
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	opts := "{}"
	if options != nil {
		b, err := json.Marshal(options)
		if err != nil {
			Abort("failed to encode call options")
		}
		opts = string(b)
	}
	return contractCall(&contractId, &method, &payload, &opts)
}

func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}
