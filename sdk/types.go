package sdk

// Address is a chain account, prefixed by its origin ("hive:alice", "contract:xyz").
type Address string

func (a Address) String() string { return string(a) }

// Asset is a native L1 asset the contract can draw and transfer.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is a signed permission attached to a transaction, e.g.
// {"type":"transfer.allow","args":{"limit":"1.000","token":"hive"}}.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the execution context of the current call.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"msg.sender"`
	Caller      Address  `json:"msg.caller"`
	Intents     []Intent `json:"intents"`
}

// ContractCallOptions limits what a called contract may pull from the caller.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
