package main

// StateView is the JSON answer of get_state. Amounts and fractions are
// decimal integer strings.
type StateView struct {
	Owner              string `json:"owner"`
	NftAccount         string `json:"nftAccount"`
	Panic              bool   `json:"panic"`
	PaymentAdjustment  string `json:"paymentAdjustment"`
	NftFee             string `json:"nftFee"`
	OwnerFee           string `json:"ownerFee"`
	HouseFee           string `json:"houseFee"`
	MaxBet             string `json:"maxBet"`
	MinBet             string `json:"minBet"`
	MinBalanceFraction string `json:"minBalanceFraction"`
	MaxOdds            uint8  `json:"maxOdds"`
	MinOdds            uint8  `json:"minOdds"`
	PlayCount          string `json:"playCount"`
}

type PartnerView struct {
	Code              string `json:"code"`
	Owner             string `json:"owner"`
	Blocked           bool   `json:"blocked"`
	Denom             string `json:"denom"`
	PartnerFee        string `json:"partnerFee"`
	PartnerBalance    string `json:"partnerBalance"`
	HouseBalance      string `json:"houseBalance"`
	PaymentAdjustment string `json:"paymentAdjustment"`
	HouseFee          string `json:"houseFee"`
	MaxBet            string `json:"maxBet"`
	MinBet            string `json:"minBet"`
	MaxOdds           uint8  `json:"maxOdds"`
	MinOdds           uint8  `json:"minOdds"`
}

type PoolsView struct {
	Denom string `json:"denom"`
	Owner string `json:"owner"`
	Nft   string `json:"nft"`
}

func getStateImpl() *string {
	c := loadConfig()
	out := ToJSON(StateView{
		Owner:              c.Owner,
		NftAccount:         c.NftAccount,
		Panic:              c.Panic,
		PaymentAdjustment:  UInt64ToString(c.PaymentAdjustment),
		NftFee:             UInt64ToString(c.NftFee),
		OwnerFee:           UInt64ToString(c.OwnerFee),
		HouseFee:           UInt64ToString(c.HouseFee),
		MaxBet:             UInt64ToString(c.MaxBet),
		MinBet:             UInt64ToString(c.MinBet),
		MinBalanceFraction: UInt64ToString(c.MinBalanceFraction),
		MaxOdds:            c.MaxOdds,
		MinOdds:            c.MinOdds,
		PlayCount:          UInt64ToString(c.PlayCount),
	}, "state")
	return &out
}

func getPartnerImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	require(in == "", "too many arguments")
	g := loadGame(code)
	out := ToJSON(PartnerView{
		Code:              g.Code,
		Owner:             g.PartnerOwner,
		Blocked:           g.Blocked,
		Denom:             g.Denom.Key(),
		PartnerFee:        UInt64ToString(g.PartnerFee),
		PartnerBalance:    UInt64ToString(g.PartnerBalance),
		HouseBalance:      UInt64ToString(g.SubHouseBalance),
		PaymentAdjustment: UInt64ToString(g.PaymentAdjustment),
		HouseFee:          UInt64ToString(g.HouseFee),
		MaxBet:            UInt64ToString(g.MaxBet),
		MinBet:            UInt64ToString(g.MinBet),
		MaxOdds:           g.MaxOdds,
		MinOdds:           g.MinOdds,
	}, "partner")
	return &out
}

func getPoolsImpl(payload *string) *string {
	d := parseDenomPayload(payload)
	out := ToJSON(PoolsView{
		Denom: d.Key(),
		Owner: UInt64ToString(getOwnerPool(d)),
		Nft:   UInt64ToString(getNftPool(d)),
	}, "pools")
	return &out
}
