// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
)

// Command identifies an ActiveSync command. The numeric value is the command
// code carried in the compact (Base64) query string.
type Command byte

const (
	CommandSync              Command = 0
	CommandSendMail          Command = 1
	CommandSmartForward      Command = 2
	CommandSmartReply        Command = 3
	CommandGetAttachment     Command = 4
	CommandFolderSync        Command = 9
	CommandFolderCreate      Command = 10
	CommandFolderDelete      Command = 11
	CommandFolderUpdate      Command = 12
	CommandMoveItems         Command = 13
	CommandGetItemEstimate   Command = 14
	CommandMeetingResponse   Command = 15
	CommandSearch            Command = 16
	CommandSettings          Command = 17
	CommandPing              Command = 18
	CommandItemOperations    Command = 19
	CommandProvision         Command = 20
	CommandResolveRecipients Command = 21
	CommandValidateCert      Command = 22
	CommandFind              Command = 23
)

var commandNames = map[Command]string{
	CommandSync:              "Sync",
	CommandSendMail:          "SendMail",
	CommandSmartForward:      "SmartForward",
	CommandSmartReply:        "SmartReply",
	CommandGetAttachment:     "GetAttachment",
	CommandFolderSync:        "FolderSync",
	CommandFolderCreate:      "FolderCreate",
	CommandFolderDelete:      "FolderDelete",
	CommandFolderUpdate:      "FolderUpdate",
	CommandMoveItems:         "MoveItems",
	CommandGetItemEstimate:   "GetItemEstimate",
	CommandMeetingResponse:   "MeetingResponse",
	CommandSearch:            "Search",
	CommandSettings:          "Settings",
	CommandPing:              "Ping",
	CommandItemOperations:    "ItemOperations",
	CommandProvision:         "Provision",
	CommandResolveRecipients: "ResolveRecipients",
	CommandValidateCert:      "ValidateCert",
	CommandFind:              "Find",
}

// String returns the command name used in plain-text queries (Cmd=...).
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", byte(c))
}

// Code returns the compact query command code.
func (c Command) Code() byte {
	return byte(c)
}

// ParseCommand resolves a command by its plain-text name.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// CommandByCode resolves a command by its compact query code.
func CommandByCode(code byte) (Command, error) {
	c := Command(code)
	if _, ok := commandNames[c]; !ok {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownCommand, code)
	}
	return c, nil
}

// Commands returns every known command in code order.
func Commands() []Command {
	out := make([]Command, 0, len(commandNames))
	for c := range commandNames {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
