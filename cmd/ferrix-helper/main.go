// ferrix-helper is the privileged companion binary, launched through
// pkexec for the readings plain users cannot make. It always prints
// exactly one JSON object on stdout and exits zero; failures travel in
// the error slot so the caller can surface them per section.
package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"ferrix-agent/internal/dmi"
	"ferrix-agent/internal/helper"
	"ferrix-agent/internal/proc"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func main() {
	if len(os.Args) != 2 {
		reply(envelope{Error: fmt.Sprintf("usage: %s %s|%s", os.Args[0], helper.ModeDMI, helper.ModeModules)})
		return
	}

	switch os.Args[1] {
	case helper.ModeDMI:
		table, err := dmi.Read()
		if err != nil {
			reply(envelope{Error: err.Error()})
			return
		}
		reply(envelope{Data: table})
	case helper.ModeModules:
		mods, err := proc.ReadKernelModules()
		if err != nil {
			reply(envelope{Error: err.Error()})
			return
		}
		reply(envelope{Data: mods})
	default:
		reply(envelope{Error: fmt.Sprintf("unknown mode %q", os.Args[1])})
	}
}

func reply(env envelope) {
	out, err := jsonAPI.Marshal(env)
	if err != nil {
		out = []byte(`{"error":"encode reply failed"}`)
	}
	fmt.Println(string(out))
}
