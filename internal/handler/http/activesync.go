package http

import (
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/app"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/multipart"
	"github.com/MKhiriev/go-eas-suite/internal/utils"
	"github.com/MKhiriev/go-eas-suite/internal/wbxml"
	"github.com/MKhiriev/go-eas-suite/models"
)

const maxRequestBody = 16 << 20

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, 20)
	for _, c := range models.Commands() {
		names = append(names, c.String())
	}

	w.Header().Set(activesync.HeaderProtocolVersions, strings.Join(h.settings.Versions, ","))
	w.Header().Set(activesync.HeaderProtocolCommands, strings.Join(names, ","))
	w.Header().Set("MS-Server-ActiveSync", "14.1")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) command(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query, err := activesync.ParseQuery(r.URL.RawQuery, r.Header)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg(app.MsgInvalidQuery)
		http.Error(w, fmt.Sprintf("%s: %v", app.MsgInvalidQuery, err), http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	body, err := readRequestXML(r.Body, contentType)
	if err != nil {
		log.Err(err).Str("cmd", query.Command.String()).Msg(app.MsgInvalidBody)
		http.Error(w, fmt.Sprintf("%s: %v", app.MsgInvalidBody, err), http.StatusBadRequest)
		return
	}
	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	h.script.record(Exchange{Query: query, ContentType: contentType, TraceID: traceID, XML: body})

	reply, ok := h.script.next(query.Command)
	if !ok {
		log.Warn().Str("cmd", query.Command.String()).Msg(ErrNoReplyScripted.Error())
		http.Error(w, fmt.Sprintf("%s: %s", ErrNoReplyScripted, query.Command), http.StatusNotImplemented)
		return
	}

	if err = writeReply(w, reply, query.AcceptMultiPart); err != nil {
		log.Err(err).Str("cmd", query.Command.String()).Msg("error writing scripted reply")
	}
}

// readRequestXML returns the request document: WBXML bodies are decoded,
// anything else (rfc822 mail, plain XML) is returned as is.
func readRequestXML(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxRequestBody))
	if err != nil {
		return "", err
	}
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == activesync.ContentTypeWBXML {
		return wbxml.Decode(data)
	}
	return string(data), nil
}

func writeReply(w http.ResponseWriter, reply Reply, acceptMultiPart bool) error {
	for k, vs := range reply.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := reply.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	body, err := wbxml.Encode(reply.XML)
	if err != nil {
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return err
	}

	contentType := activesync.ContentTypeWBXML
	if acceptMultiPart && len(reply.Parts) > 0 {
		contentType = activesync.ContentTypeMultipart
		body = multipart.Build(append([][]byte{body}, reply.Parts...)...)
	}

	if len(body) > 0 {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

func (h *Handler) autodiscover(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AutodiscoverRequest
	if err := xml.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.Err(err).Msg("bad autodiscover request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.EMailAddress == "" {
		http.Error(w, app.MsgMissingEmailAddress, http.StatusBadRequest)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	url := scheme + "://" + r.Host + activesync.EndpointPath
	displayName, _, _ := strings.Cut(req.EMailAddress, "@")

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Autodiscover xmlns="http://schemas.microsoft.com/exchange/autodiscover/responseschema/2006">`)
	b.WriteString(`<Response xmlns="http://schemas.microsoft.com/exchange/autodiscover/mobilesync/responseschema/2006">`)
	b.WriteString(`<Culture>en:us</Culture><User><DisplayName>`)
	_ = xml.EscapeText(&b, []byte(displayName))
	b.WriteString(`</DisplayName><EMailAddress>`)
	_ = xml.EscapeText(&b, []byte(req.EMailAddress))
	b.WriteString(`</EMailAddress></User><Action><Settings><Server><Type>MobileSync</Type><Url>`)
	_ = xml.EscapeText(&b, []byte(url))
	b.WriteString(`</Url><Name>`)
	_ = xml.EscapeText(&b, []byte(url))
	b.WriteString(`</Name></Server></Settings></Action></Response></Autodiscover>`)

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, b.String())
}
