package activesync

import (
	"github.com/MKhiriev/go-eas-suite/internal/wbxml"
	"github.com/MKhiriev/go-eas-suite/models"
)

// elidedElements names, per command, the element whose content the server
// rejects when echoed back. Every occurrence, at any depth, is emptied
// before the body is encoded.
var elidedElements = map[models.Command]string{
	models.CommandSync:           "Supported",
	models.CommandItemOperations: "Schema",
}

func elide(cmd models.Command, root *wbxml.Node) {
	name, ok := elidedElements[cmd]
	if !ok || root == nil {
		return
	}
	root.Walk(func(n *wbxml.Node) {
		if n.Name == name {
			n.Children = nil
			n.Text = ""
		}
	})
}
