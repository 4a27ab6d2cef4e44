package script

import (
	"errors"

	toml "github.com/pelletier/go-toml"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) (rawScript, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return rawScript{}, err
	}
	return raw, nil
}

func decodeTOML(data []byte) (rawScript, error) {
	var raw rawScript
	if err := toml.Unmarshal(data, &raw); err != nil {
		return rawScript{}, err
	}
	return raw, nil
}

func decodeJSON(data []byte) (rawScript, error) {
	if !gjson.ValidBytes(data) {
		return rawScript{}, errors.New("invalid json")
	}
	doc := gjson.ParseBytes(data)

	raw := rawScript{Name: doc.Get("name").String()}
	doc.Get("events").ForEach(func(_, v gjson.Result) bool {
		raw.Events = append(raw.Events, rawEvent{
			Type:   v.Get("type").String(),
			Key:    v.Get("key").String(),
			Button: v.Get("button").String(),
			Action: v.Get("action").String(),
			Char:   v.Get("char").String(),
			X:      int(v.Get("x").Int()),
			Y:      int(v.Get("y").Int()),
			Delta:  int(v.Get("delta").Int()),
			Wait:   v.Get("wait").String(),
		})
		return true
	})
	return raw, nil
}
