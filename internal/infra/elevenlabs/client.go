package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"carmommy/internal/pkg/config"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"
)

// Client talks to the ElevenLabs conversational-AI API. There is no official
// Go SDK; this is a thin REST wrapper. A missing API key is sent as an empty
// header and surfaces as a vendor 401 rather than a startup failure.
type Client struct {
	apiKey        string
	agentID       string
	phoneNumberID string
	baseURL       string
	baseURLV2     string
	http          *http.Client
}

func NewClient(cfg config.ElevenLabsConfig) *Client {
	return &Client{
		apiKey:        cfg.APIKey,
		agentID:       cfg.AgentID,
		phoneNumberID: cfg.PhoneNumberID,
		baseURL:       cfg.BaseURL,
		baseURLV2:     cfg.BaseURLV2,
		http:          &http.Client{Timeout: cfg.Timeout},
	}
}

type outboundCallRequest struct {
	AgentID                          string               `json:"agent_id"`
	AgentPhoneNumberID               string               `json:"agent_phone_number_id"`
	ToNumber                         string               `json:"to_number"`
	ConversationInitiationClientData conversationInitData `json:"conversation_initiation_client_data"`
}

type conversationInitData struct {
	ConversationConfigOverride *configOverride `json:"conversation_config_override,omitempty"`
	DynamicVariables           map[string]any  `json:"dynamic_variables"`
}

type configOverride struct {
	TTS ttsOverride `json:"tts"`
}

type ttsOverride struct {
	VoiceID string `json:"voice_id"`
}

type outboundCallResponse struct {
	CallSID        string `json:"callSid"`
	ConversationID string `json:"conversation_id"`
}

func (c *Client) StartOutboundCall(ctx context.Context, call commands.OutboundCall) (*commands.OutboundCallResult, error) {
	payload := outboundCallRequest{
		AgentID:            c.agentID,
		AgentPhoneNumberID: c.phoneNumberID,
		ToNumber:           call.ToNumber,
		ConversationInitiationClientData: conversationInitData{
			DynamicVariables: map[string]any{
				"year":          call.Year,
				"make":          call.Make,
				"model":         call.Model,
				"zipcode":       call.Zipcode,
				"dealer_name":   call.DealerName,
				"vin":           call.VIN,
				"msrp":          call.MSRP,
				"listing_price": call.ListingPrice,
				"stock_number":  call.StockNumber,
			},
		},
	}
	if call.VoiceID != "" {
		payload.ConversationInitiationClientData.ConversationConfigOverride = &configOverride{
			TTS: ttsOverride{VoiceID: call.VoiceID},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode outbound call request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/convai/twilio/outbound-call", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build outbound call request")
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed outboundCallResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode outbound call response")
	}

	return &commands.OutboundCallResult{
		CallSID:        parsed.CallSID,
		ConversationID: parsed.ConversationID,
		Raw:            raw,
	}, nil
}

func (c *Client) CreateVoice(ctx context.Context, name string, audio []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("name", name); err != nil {
		return nil, errs.Wrap(err, "failed to write name field")
	}
	fw, err := mw.CreateFormFile("files", "audio.mp3")
	if err != nil {
		return nil, errs.Wrap(err, "failed to create audio form file")
	}
	if _, err := fw.Write(audio); err != nil {
		return nil, errs.Wrap(err, "failed to write audio payload")
	}
	if err := mw.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/voices/add", &buf)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build voice upload request")
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

type voicesResponse struct {
	Voices []struct {
		Name    string `json:"name"`
		VoiceID string `json:"voice_id"`
	} `json:"voices"`
}

func (c *Client) ListVoices(ctx context.Context) ([]queries.VoiceView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURLV2+"/voices", nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build voices request")
	}
	req.Header.Set("xi-api-key", c.apiKey)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed voicesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode voices response")
	}

	views := make([]queries.VoiceView, len(parsed.Voices))
	for i, v := range parsed.Voices {
		views[i] = queries.VoiceView{Name: v.Name, VoiceID: v.VoiceID}
	}
	return views, nil
}

// do executes the request and returns the body; non-2xx responses become
// errors carrying the vendor's status and body text. Attempted exactly once.
func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "elevenlabs request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read elevenlabs response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errs.New("ElevenLabs API error: " + res.Status + " - " + string(body))
	}
	return body, nil
}
