package external

import (
	"bytes"
	"context"
	"encoding/json"
	"eventsite/common"
	"eventsite/models"
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"eventsite/utils"
	"github.com/pkg/errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	ApiUpcomingEvent = "/events/upcoming"
)

// EventAPI 上游活动接口客户端
type EventAPI struct {
	base        string
	serviceName string
	client      *http.Client
}

func NewEventAPI(cfg common.EventsConfig) *EventAPI {
	base := strings.TrimRight(cfg.Addr, "/")
	if prefix := strings.Trim(cfg.ApiPrefix, "/"); len(prefix) > 0 {
		base += "/" + prefix
	}
	return &EventAPI{
		base:        base,
		serviceName: cfg.ServiceName,
		client:      NewHttpClient(cfg.Timeout),
	}
}

// envelope 兼容直接返回活动与{"data": event}两种格式
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// FetchUpcomingEvent 实现events.FetchFunc
func (a *EventAPI) FetchUpcomingEvent(ctx context.Context, lang locale.Locale) (*models.Event, error) {
	api := a.base + ApiUpcomingEvent + "?" + url.Values{"lang": {string(lang)}}.Encode()
	req, err := http.NewRequest("GET", api, nil)
	if err != nil {
		return nil, errors.Wrapf(events.ErrUpstream, "create request: %s", err.Error())
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	if token, err := utils.NewAccessToken(a.serviceName).GenerateToken(); err != nil {
		common.Log.Warnf("Requesting %s without access token: %s", api, err.Error())
	} else {
		req.Header.Set(utils.TokenNameInHeader, token)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(events.ErrUpstream, "http request error: %s", err.Error())
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, errors.Wrapf(events.ErrEventNotFound, "no upcoming event for %s", lang)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Wrapf(events.ErrUpstream, "%s responded %d", api, resp.StatusCode)
	}
	raw := json.RawMessage{}
	if err := ParseResponse(resp, &raw); err != nil {
		return nil, errors.Wrap(events.ErrUpstream, err.Error())
	}
	body := []byte(raw)
	env := envelope{}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		body = env.Data
	}
	ev := &models.Event{}
	if err := json.Unmarshal(body, ev); err != nil {
		return nil, errors.Wrapf(events.ErrUpstream, "decode event: %s", err.Error())
	}
	if err := ev.Validate(); err != nil {
		return nil, errors.Wrap(events.ErrUpstream, err.Error())
	}
	if len(ev.Lang) == 0 {
		ev.Lang = string(lang)
	}
	return ev, nil
}

var _ events.FetchFunc = (&EventAPI{}).FetchUpcomingEvent
