package respond

import (
	"strconv"

	"github.com/twilio/twilio-go/twiml"
)

// All replies use one fixed voice and locale; this is the only place where
// the spoken language is selected.
const (
	voiceName = "alice"
	language  = "fr-FR"
)

// FallbackDocument is a pre-rendered reply used when TwiML generation itself
// fails. The caller must always hear a normal goodbye, whatever breaks.
const FallbackDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Response><Say voice="alice" language="fr-FR">Merci pour votre appel. Au revoir.</Say><Hangup/></Response>`

// SayHangup speaks a sentence and ends the call.
func SayHangup(sentence string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: sentence, Voice: voiceName, Language: language},
		&twiml.VoiceHangup{},
	})
}

// GreetRecord speaks the greeting then records the caller's message, posting
// the finished recording to actionPath.
func GreetRecord(sentence string, maxSeconds int, actionPath string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: sentence, Voice: voiceName, Language: language},
		&twiml.VoiceRecord{
			Action:    actionPath,
			MaxLength: strconv.Itoa(maxSeconds),
			PlayBeep:  "true",
		},
	})
}

// DialWithTakeover forwards the call to a number; if nobody answers within the
// timeout, the telephony layer posts the outcome to actionPath and the
// secretary takes over.
func DialWithTakeover(number string, timeoutSeconds int, actionPath string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceDial{
			Action:  actionPath,
			Timeout: strconv.Itoa(timeoutSeconds),
			InnerElements: []twiml.Element{
				&twiml.VoiceNumber{PhoneNumber: number},
			},
		},
	})
}

// Empty is the terminal no-op document, returned when a forwarded call was
// answered and there is nothing left for the secretary to do.
func Empty() (string, error) {
	return twiml.Voice(nil)
}
