package http

import (
	"net/http"
	"sync"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/models"
)

// Reply is one canned response. XML is encoded to WBXML; when Parts is set
// and the request accepts multipart, the WBXML document becomes part 0 of a
// multipart body followed by Parts.
type Reply struct {
	StatusCode int
	XML        string
	Parts      [][]byte
	Header     http.Header
}

// Exchange is one command request as the server received it.
type Exchange struct {
	Query       *activesync.Query
	ContentType string
	TraceID     string
	// XML is the decoded WBXML body, or the raw body for other content
	// types.
	XML string
}

// Script queues replies per command. Replies are served in order and the
// last one keeps being served once the queue is down to it.
type Script struct {
	mu        sync.Mutex
	replies   map[models.Command][]Reply
	exchanges []Exchange
}

func NewScript() *Script {
	return &Script{replies: make(map[models.Command][]Reply)}
}

// Enqueue appends replies for cmd.
func (s *Script) Enqueue(cmd models.Command, replies ...Reply) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[cmd] = append(s.replies[cmd], replies...)
	return s
}

// Exchanges returns the requests received so far.
func (s *Script) Exchanges() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// Reset drops every queued reply and recorded exchange.
func (s *Script) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = make(map[models.Command][]Reply)
	s.exchanges = nil
}

func (s *Script) next(cmd models.Command) (Reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.replies[cmd]
	if len(queue) == 0 {
		return Reply{}, false
	}
	reply := queue[0]
	if len(queue) > 1 {
		s.replies[cmd] = queue[1:]
	}
	return reply, true
}

func (s *Script) record(e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, e)
}

// Default policy key handed out by [DefaultScript].
const DefaultPolicyKey = "1307199584"

// DefaultScript answers the commands of the smoke suite with a mailbox that
// holds an empty Inbox.
func DefaultScript() *Script {
	s := NewScript()
	s.Enqueue(models.CommandProvision, Reply{XML: `<Provision xmlns="Provision"><Status>1</Status>` +
		`<Policies><Policy><PolicyType>MS-EAS-Provisioning-WBXML</PolicyType><Status>1</Status>` +
		`<PolicyKey>` + DefaultPolicyKey + `</PolicyKey></Policy></Policies></Provision>`})
	s.Enqueue(models.CommandFolderSync, Reply{XML: `<FolderSync xmlns="FolderHierarchy"><Status>1</Status>` +
		`<SyncKey>1</SyncKey><Changes><Count>3</Count>` +
		`<Add><ServerId>5</ServerId><ParentId>0</ParentId><DisplayName>Inbox</DisplayName><Type>2</Type></Add>` +
		`<Add><ServerId>6</ServerId><ParentId>0</ParentId><DisplayName>Sent Items</DisplayName><Type>5</Type></Add>` +
		`<Add><ServerId>7</ServerId><ParentId>0</ParentId><DisplayName>Drafts</DisplayName><Type>3</Type></Add>` +
		`</Changes></FolderSync>`})
	s.Enqueue(models.CommandSync, Reply{XML: `<Sync xmlns="AirSync"><Collections><Collection>` +
		`<SyncKey>1</SyncKey><CollectionId>5</CollectionId><Status>1</Status>` +
		`</Collection></Collections></Sync>`})
	s.Enqueue(models.CommandSettings, Reply{XML: `<Settings xmlns="Settings"><Status>1</Status></Settings>`})
	s.Enqueue(models.CommandPing, Reply{XML: `<Ping xmlns="Ping"><Status>1</Status></Ping>`})
	return s
}
