package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label keys for node names.
const (
	KeyEntryPoint  = "node.entry_point"
	KeyEntryNotes  = "node.entry_notes"
	KeyPassword    = "node.password"
	KeyFile        = "node.file"
	KeyControl     = "node.control"
	KeyBlackIce    = "node.black_ice"
	KeyPlaceholder = "node.placeholder"
	KeyDataArchive = "node.data_archive"
)

const keyErrorPrefix = "error."

// ErrorKey returns the message key for an error code.
func ErrorKey(code string) string {
	return keyErrorPrefix + code
}

func init() {
	en := language.English
	message.SetString(en, KeyEntryPoint, "Entry Point")
	message.SetString(en, KeyEntryNotes, "Starting node.")
	message.SetString(en, KeyPassword, "Password")
	message.SetString(en, KeyFile, "File")
	message.SetString(en, KeyControl, "Control")
	message.SetString(en, KeyBlackIce, "Black ICE")
	message.SetString(en, KeyPlaceholder, "Node")
	message.SetString(en, KeyDataArchive, "Data Archive")

	message.SetString(en, ErrorKey("NODE_NOT_FOUND"), "The node does not exist.")
	message.SetString(en, ErrorKey("ROOT_PROTECTED"), "The entry point cannot be removed.")
	message.SetString(en, ErrorKey("INVALID_NODE_PATCH"), "The node edit is invalid.")
	message.SetString(en, ErrorKey("UNKNOWN_NODE_TYPE"), "Unknown node type.")
	message.SetString(en, ErrorKey("UNKNOWN_DIFFICULTY"), "Unknown difficulty.")
	message.SetString(en, ErrorKey("NO_ACTIONS_LEFT"), "No actions left this round.")
	message.SetString(en, ErrorKey("UNKNOWN_PROFILE"), "Unknown rule profile.")
	message.SetString(en, ErrorKey("UNKNOWN_PROGRAM"), "Unknown program.")
	message.SetString(en, ErrorKey("UNKNOWN_ACTION"), "Unknown net action.")
	message.SetString(en, ErrorKey("SNAPSHOT_MALFORMED"), "The saved session is damaged.")
	message.SetString(en, ErrorKey("NOT_FOUND"), "Nothing saved under that id.")
	message.SetString(en, ErrorKey("SESSION_NOT_FOUND"), "The table does not exist.")
	message.SetString(en, ErrorKey("UNKNOWN"), "Something went wrong.")

	de := language.German
	message.SetString(de, KeyEntryPoint, "Einstiegspunkt")
	message.SetString(de, KeyEntryNotes, "Startknoten.")
	message.SetString(de, KeyPassword, "Passwort")
	message.SetString(de, KeyFile, "Datei")
	message.SetString(de, KeyControl, "Control")
	message.SetString(de, KeyBlackIce, "Black ICE")
	message.SetString(de, KeyPlaceholder, "Knoten")
	message.SetString(de, KeyDataArchive, "Datenarchiv")

	message.SetString(de, ErrorKey("NODE_NOT_FOUND"), "Der Knoten existiert nicht.")
	message.SetString(de, ErrorKey("ROOT_PROTECTED"), "Root kann nicht gelöscht werden.")
	message.SetString(de, ErrorKey("INVALID_NODE_PATCH"), "Die Knotenänderung ist ungültig.")
	message.SetString(de, ErrorKey("UNKNOWN_NODE_TYPE"), "Unbekannter Knotentyp.")
	message.SetString(de, ErrorKey("UNKNOWN_DIFFICULTY"), "Unbekannte Schwierigkeit.")
	message.SetString(de, ErrorKey("NO_ACTIONS_LEFT"), "Keine Aktionen mehr in dieser Runde.")
	message.SetString(de, ErrorKey("UNKNOWN_PROFILE"), "Unbekanntes Regelprofil.")
	message.SetString(de, ErrorKey("UNKNOWN_PROGRAM"), "Unbekanntes Programm.")
	message.SetString(de, ErrorKey("UNKNOWN_ACTION"), "Unbekannte NET-Aktion.")
	message.SetString(de, ErrorKey("SNAPSHOT_MALFORMED"), "Der gespeicherte Zustand ist beschädigt.")
	message.SetString(de, ErrorKey("NOT_FOUND"), "Unter dieser ID ist nichts gespeichert.")
	message.SetString(de, ErrorKey("SESSION_NOT_FOUND"), "Der Tisch existiert nicht.")
	message.SetString(de, ErrorKey("UNKNOWN"), "Etwas ist schiefgelaufen.")
}
