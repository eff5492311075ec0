package helper

import (
	"encoding/json"
	"log"
)

func PrettyPrint(i interface{}) string {
	s, err := json.MarshalIndent(i, "", "\t")
	if err != nil {
		log.Printf("prettprint.Get err   #%v ", err)
	}
	return string(s)
}
