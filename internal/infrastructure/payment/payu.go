package payment

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// PayUGateway builds self-hosted-checkout orders for PayU. The browser
// receives the action URL plus form params and submits a hidden form; the
// request hash is generated here so the merchant salt never reaches the
// client.
type PayUGateway struct {
	actionURL   string
	merchantKey string
	salt        string
	baseURL     string
}

// methodCodes maps our closed payment-method set to PayU pg codes.
var methodCodes = map[domain.PaymentMethod]string{
	domain.MethodUPI:        "UPI",
	domain.MethodCard:       "CC",
	domain.MethodNetBanking: "NB",
	domain.MethodWallet:     "CASH",
}

// NewPayUGateway creates a new PayU order builder
func NewPayUGateway(actionURL, merchantKey, salt, baseURL string) *PayUGateway {
	return &PayUGateway{
		actionURL:   actionURL,
		merchantKey: merchantKey,
		salt:        salt,
		baseURL:     baseURL,
	}
}

// BuildOrder creates the provider handoff for the given session and final
// amount. Both success and failure legs return through /payu/callback.
func (g *PayUGateway) BuildOrder(session *domain.Session, breakdown *domain.PriceBreakdown, method domain.PaymentMethod) (*domain.GatewayOrder, error) {
	code, ok := methodCodes[method]
	if !ok {
		return nil, domain.ErrMethodInvalid
	}

	txnID, err := newTxnID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	amount := fmt.Sprintf("%d", breakdown.Total)
	productInfo := fmt.Sprintf("%d Biffle Coins", breakdown.Coins)
	callbackURL := g.baseURL + domain.PagePayUCallback.Path()

	params := map[string]string{
		"key":         g.merchantKey,
		"txnid":       txnID,
		"amount":      amount,
		"productinfo": productInfo,
		"firstname":   session.Name,
		"email":       session.Email,
		"phone":       session.Phone,
		"pg":          code,
		"surl":        callbackURL,
		"furl":        callbackURL,
	}
	params["hash"] = g.requestHash(txnID, amount, productInfo, session.Name, session.Email)

	return &domain.GatewayOrder{
		TxnID:     txnID,
		Amount:    breakdown.Total,
		ActionURL: g.actionURL,
		Params:    params,
	}, nil
}

// requestHash computes the PayU v1 request hash:
// sha512(key|txnid|amount|productinfo|firstname|email|udf1..udf5||||||salt)
func (g *PayUGateway) requestHash(txnID, amount, productInfo, firstname, email string) string {
	fields := []string{
		g.merchantKey, txnID, amount, productInfo, firstname, email,
		"", "", "", "", "", // udf1..udf5, unused
		"", "", "", "", "",
		g.salt,
	}
	sum := sha512.Sum512([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

func newTxnID() (string, error) {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "bfl" + hex.EncodeToString(bytes), nil
}
