package forms

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Yanıt payload'ı açık bir map yerine etiketli birlik olarak modellenir:
// alan adı -> string | liste | dosya. Depolamaya düz JSON olarak TEXT
// kolonunda yazılır.

type Kind int

const (
	KindString Kind = iota
	KindList
	KindFile
)

type FileValue struct {
	Filename string
	Data     string // data-URL (data:<mime>;base64,<içerik>)
}

// DecodedSize base64 gövdesinin çözülmüş bayt sayısı; veri data-URL
// değilse tüm string gövde sayılır.
func (f FileValue) DecodedSize() int {
	body := f.Data
	if i := strings.Index(body, "base64,"); i >= 0 {
		body = body[i+len("base64,"):]
	}
	n := base64.StdEncoding.DecodedLen(len(body))
	// padding düzeltmesi
	if strings.HasSuffix(body, "==") {
		n -= 2
	} else if strings.HasSuffix(body, "=") {
		n--
	}
	return n
}

type Value struct {
	Kind Kind
	Str  string
	List []string
	File FileValue
}

type Payload map[string]Value

const fileSuffix = "_file"

// ReservedName dosya eşleme son ekiyle çakışan alan adları. Builder bu
// adları kaydetmeyi reddeder; yoksa DecodePayload böyle bir alana gelen her
// değeri yetim _file anahtarı sayıp gönderimi reddeder.
func ReservedName(name string) bool {
	return strings.HasSuffix(name, fileSuffix)
}

// DecodePayload istemciden gelen açık JSON map'ini etiketli birliğe çevirir.
// "<name>_file" anahtarları "<name>" ile eşleştirilir; eşi olmayan _file
// anahtarı hatadır (ikisi birlikte gelir ya da hiç gelmez).
func DecodePayload(raw map[string]any) (Payload, error) {
	p := make(Payload, len(raw))

	for key, val := range raw {
		if strings.HasSuffix(key, fileSuffix) {
			base := strings.TrimSuffix(key, fileSuffix)
			if _, ok := raw[base]; !ok {
				return nil, fmt.Errorf("eşleşmeyen dosya anahtarı: %s", key)
			}
			continue // base anahtar işlenirken birleştirilir
		}

		if blob, ok := raw[key+fileSuffix]; ok {
			name, ok1 := val.(string)
			data, ok2 := blob.(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("dosya alanı %s için geçersiz değer", key)
			}
			p[key] = Value{Kind: KindFile, File: FileValue{Filename: name, Data: data}}
			continue
		}

		switch v := val.(type) {
		case string:
			p[key] = Value{Kind: KindString, Str: v}
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("alan %s: liste elemanı string değil", key)
				}
				list = append(list, s)
			}
			p[key] = Value{Kind: KindList, List: list}
		case nil:
			// temizlenmiş alan; hiç gelmemiş sayılır
		default:
			return nil, fmt.Errorf("alan %s: desteklenmeyen değer tipi", key)
		}
	}
	return p, nil
}

// Encode payload'ı depolanacak düz map'e geri açar (dosya -> iki anahtar).
func (p Payload) Encode() map[string]any {
	out := make(map[string]any, len(p))
	for name, v := range p {
		switch v.Kind {
		case KindString:
			out[name] = v.Str
		case KindList:
			out[name] = v.List
		case KindFile:
			out[name] = v.File.Filename
			out[name+fileSuffix] = v.File.Data
		}
	}
	return out
}

// EncodeText TEXT kolonuna yazılacak JSON'u üretir.
func (p Payload) EncodeText() (string, error) {
	b, err := json.Marshal(p.Encode())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParsePayloadText TEXT kolonundan okunan JSON'u geri çözer.
func ParsePayloadText(raw string) (Payload, error) {
	if raw == "" {
		return nil, errors.New("boş payload")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return DecodePayload(m)
}
