//go:build test

package sdk

import (
	"fmt"
	"strconv"
)

// In-memory chain used by unit tests. Abort panics with *AbortError so a
// test harness can recover it and roll the state back like the host does.

type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return "abort: " + e.Msg }

// ContractHandler answers ContractCall for a registered contract id.
type ContractHandler func(caller Address, method string, payload string) *string

type Snapshot struct {
	state    map[string]string
	balances map[Address]map[Asset]int64
	logs     []string
}

type mockChain struct {
	state     map[string]string
	env       Env
	balances  map[Address]map[Asset]int64
	contracts map[string]ContractHandler
	logs      []string
}

var chain = newMockChain()

func newMockChain() *mockChain {
	return &mockChain{
		state:     map[string]string{},
		balances:  map[Address]map[Asset]int64{},
		contracts: map[string]ContractHandler{},
		env: Env{
			ContractId:  "slot_machine",
			TxId:        "tx0",
			BlockId:     "block0",
			BlockHeight: 1,
			Timestamp:   "2025-01-01T00:00:00",
		},
	}
}

// ---------- test controls ----------

func Reset() { chain = newMockChain() }

func SetContractId(id string) { chain.env.ContractId = id }

func ContractAddress() Address { return Address("contract:" + chain.env.ContractId) }

func SetSender(addr Address) {
	chain.env.Sender = Sender{Address: addr, RequiredAuths: []Address{addr}}
	chain.env.Caller = addr
}

func SetCaller(addr Address) { chain.env.Caller = addr }

func SetIntents(intents []Intent) { chain.env.Intents = intents }

func SetTx(txID string) { chain.env.TxId = txID }

func SetBlock(blockID string, height uint64, ts string) {
	chain.env.BlockId = blockID
	chain.env.BlockHeight = height
	chain.env.Timestamp = ts
}

// Fund credits an L1 account outside of any contract call.
func Fund(addr Address, asset Asset, amount int64) {
	chain.credit(addr, asset, amount)
}

func BalanceOf(addr Address, asset Asset) int64 {
	if m, ok := chain.balances[addr]; ok {
		return m[asset]
	}
	return 0
}

func RegisterContract(id string, h ContractHandler) { chain.contracts[id] = h }

func Logs() []string { return append([]string(nil), chain.logs...) }

func ClearLogs() { chain.logs = nil }

// State exposes a copy of the key space for assertions.
func State() map[string]string {
	out := make(map[string]string, len(chain.state))
	for k, v := range chain.state {
		out[k] = v
	}
	return out
}

func TakeSnapshot() Snapshot {
	s := Snapshot{state: State(), balances: map[Address]map[Asset]int64{}, logs: Logs()}
	for a, m := range chain.balances {
		cp := map[Asset]int64{}
		for k, v := range m {
			cp[k] = v
		}
		s.balances[a] = cp
	}
	return s
}

func RestoreSnapshot(s Snapshot) {
	chain.state = s.state
	chain.balances = s.balances
	chain.logs = s.logs
}

// ---------- host functions ----------

func Log(s string) { chain.logs = append(chain.logs, s) }

func StateSetObject(key string, value string) { chain.state[key] = value }

func StateGetObject(key string) *string {
	v, ok := chain.state[key]
	if !ok {
		return nil
	}
	return &v
}

func StateDeleteObject(key string) { delete(chain.state, key) }

func GetEnv() Env {
	e := chain.env
	e.Intents = append([]Intent(nil), chain.env.Intents...)
	return e
}

func GetEnvKey(key string) *string {
	var v string
	switch key {
	case "contract.id":
		v = chain.env.ContractId
	case "tx.id":
		v = chain.env.TxId
	case "block.id":
		v = chain.env.BlockId
	case "block.height":
		v = strconv.FormatUint(chain.env.BlockHeight, 10)
	case "block.timestamp":
		v = chain.env.Timestamp
	case "msg.sender":
		v = chain.env.Sender.Address.String()
	case "msg.caller":
		v = chain.env.Caller.String()
	default:
		return nil
	}
	return &v
}

func GetBalance(account Address, asset Asset) int64 { return BalanceOf(account, asset) }

func HiveDraw(amount int64, asset Asset) {
	from := chain.env.Sender.Address
	if amount <= 0 {
		Abort("draw amount must be positive")
	}
	if !chain.allowed(asset, amount) {
		Abort("draw exceeds transfer.allow intent")
	}
	if BalanceOf(from, asset) < amount {
		Abort(fmt.Sprintf("insufficient %s balance for %s", asset, from))
	}
	chain.credit(from, asset, -amount)
	chain.credit(ContractAddress(), asset, amount)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	if amount <= 0 {
		Abort("transfer amount must be positive")
	}
	self := ContractAddress()
	if BalanceOf(self, asset) < amount {
		Abort(fmt.Sprintf("contract has insufficient %s balance", asset))
	}
	chain.credit(self, asset, -amount)
	chain.credit(to, asset, amount)
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	h, ok := chain.contracts[contractId]
	if !ok {
		Abort("contract " + contractId + " not found")
	}
	return h(ContractAddress(), method, payload)
}

func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

// ---------- internals ----------

func (c *mockChain) credit(addr Address, asset Asset, delta int64) {
	m, ok := c.balances[addr]
	if !ok {
		m = map[Asset]int64{}
		c.balances[addr] = m
	}
	m[asset] += delta
}

// allowed checks the draw against the first matching transfer.allow intent.
// Limits are decimal strings with three fractional digits.
func (c *mockChain) allowed(asset Asset, amount int64) bool {
	for _, in := range c.env.Intents {
		if in.Type != "transfer.allow" || in.Args["token"] != asset.String() {
			continue
		}
		limit, ok := parseMilli(in.Args["limit"])
		return ok && amount <= limit
	}
	return false
}

func parseMilli(s string) (int64, bool) {
	var whole, frac int64
	digits := -1
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '.' {
			if digits >= 0 {
				return 0, false
			}
			digits = 0
			continue
		}
		if ch < '0' || ch > '9' {
			return 0, false
		}
		if digits >= 0 {
			if digits == 3 {
				return 0, false
			}
			frac = frac*10 + int64(ch-'0')
			digits++
		} else {
			whole = whole*10 + int64(ch-'0')
		}
	}
	for digits >= 0 && digits < 3 {
		frac *= 10
		digits++
	}
	return whole*1000 + frac, true
}
