package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioCaller places calls through the Twilio REST API
type TwilioCaller struct {
	accountSID string
	client     *twilio.RestClient
}

// NewTwilioCaller builds a Twilio client from record. Construction only
// stores the credentials; nothing is sent until a call is created.
func NewTwilioCaller(record CredentialRecord) (CallCreator, error) {
	if record.AccountSID == "" || record.AuthToken == "" {
		return nil, &ValidationError{Kind: IncompleteCredentials, Field: record.MissingField()}
	}
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: record.AccountSID,
		Password: record.AuthToken,
	})
	return &TwilioCaller{accountSID: record.AccountSID, client: rc}, nil
}

// CreateCall creates an outbound call executing the given TwiML. The SDK
// call is not context aware, so ctx is only checked before sending.
func (c *TwilioCaller) CreateCall(ctx context.Context, to, from, script string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetTwiml(script)

	resp, err := c.client.Api.CreateCall(params)
	if err != nil {
		logProviderError("create call", err)
		return "", err
	}
	if resp == nil || resp.Sid == nil || *resp.Sid == "" {
		return "", errors.New("provider response carried no call sid")
	}
	return *resp.Sid, nil
}

// VerifyAccount fetches the authenticated account, which fails when the
// credentials are rejected.
func (c *TwilioCaller) VerifyAccount(ctx context.Context) (AccountInfo, error) {
	if err := ctx.Err(); err != nil {
		return AccountInfo{}, err
	}

	account, err := c.client.Api.FetchAccount(c.accountSID)
	if err != nil {
		logProviderError("fetch account", err)
		return AccountInfo{}, fmt.Errorf("failed to fetch account %s: %w", c.accountSID, err)
	}

	info := AccountInfo{SID: c.accountSID}
	if account != nil && account.FriendlyName != nil {
		info.FriendlyName = *account.FriendlyName
	}
	return info, nil
}

func logProviderError(op string, err error) {
	var restErr *client.TwilioRestError
	if errors.As(err, &restErr) {
		LogDebug("Twilio %s failed: status=%d code=%d more_info=%s", op, restErr.Status, restErr.Code, restErr.MoreInfo)
		return
	}
	LogDebug("Twilio %s failed: %v", op, err)
}
