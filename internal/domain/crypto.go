package domain

// Crypto is a demo catalog entry. CurrentPrice is in integer cents,
// Change24h in basis points.
type Crypto struct {
	ID           int64  `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	CurrentPrice int64  `json:"current_price"`
	Change24h    int64  `json:"change_24h"`
	Icon         string `json:"icon,omitempty"`
}

// Holding - количество одной монеты у пользователя. Не больше одной
// записи на пару (user, crypto); после полной продажи строка остаётся
// с нулевым amount.
type Holding struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	CryptoID int64 `json:"crypto_id"`
	Amount   int64 `json:"amount"`
}

// HoldingWithCrypto - холдинг с данными монеты (для API ответов)
type HoldingWithCrypto struct {
	Holding
	Crypto Crypto `json:"crypto"`
}
