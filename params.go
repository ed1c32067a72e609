package profile

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// opParams holds the fields operations read from Params to build URLs. Keys
// follow the remote service's naming. Body fields are never decoded; they
// are forwarded as the caller passed them.
type opParams struct {
	ID          string  `mapstructure:"id" json:"id"`
	AccessToken string  `mapstructure:"accessToken" json:"accessToken"`
	GroupID     string  `mapstructure:"groupId" json:"groupId"`
	MemberID    string  `mapstructure:"memberId" json:"memberId"`
	PostID      string  `mapstructure:"postId" json:"postId"`
	UID         string  `mapstructure:"uid" json:"uid"`
	AgencyID    string  `mapstructure:"agencyid" json:"agencyid"`
	LoanerID    string  `mapstructure:"loanerid" json:"loanerid"`
	Query       *string `mapstructure:"query" json:"query"`
}

func (p *opParams) field(key string) any {
	switch key {
	case "id":
		return &p.ID
	case "accessToken":
		return &p.AccessToken
	case "groupId":
		return &p.GroupID
	case "memberId":
		return &p.MemberID
	case "postId":
		return &p.PostID
	case "uid":
		return &p.UID
	case "agencyid":
		return &p.AgencyID
	case "loanerid":
		return &p.LoanerID
	case "query":
		return &p.Query
	}
	panic("profile: unknown required parameter " + key)
}

// presenceOnly lists the keys that only have to be present; an empty value
// is valid for them.
var presenceOnly = map[string]bool{"query": true}

// decodeParams reads the keys in required from params and checks that each is
// present and non-empty. Other keys are left untouched. Missing keys are
// reported as *MissingParameterError, several at once as a *multierror.Error.
func decodeParams(op string, params Params, required ...string) (*opParams, error) {
	input := make(map[string]any, len(required))
	for _, key := range required {
		if value, ok := params[key]; ok {
			input[key] = value
		}
	}

	var p opParams
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("%s: invalid parameters: %w", op, err)
	}

	rules := make([]*validation.FieldRules, 0, len(required))
	for _, key := range required {
		if presenceOnly[key] {
			rules = append(rules, validation.Field(p.field(key), validation.NotNil))
			continue
		}
		rules = append(rules, validation.Field(p.field(key), validation.Required))
	}

	err = validation.ValidateStruct(&p, rules...)
	if err == nil {
		return &p, nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	keys := make([]string, 0, len(fieldErrs))
	for key := range fieldErrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) == 1 {
		return nil, &MissingParameterError{Op: op, Field: keys[0]}
	}
	var result *multierror.Error
	for _, key := range keys {
		result = multierror.Append(result, &MissingParameterError{Op: op, Field: key})
	}
	return nil, result
}

// formValues encodes params the way a browser-style form encoder does:
// nested maps as key[sub], slices as key[i], nil as an empty value.
func formValues(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		addFormValue(values, key, value)
	}
	return values
}

func addFormValue(values url.Values, key string, value any) {
	if value == nil {
		values.Add(key, "")
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			addFormValue(values, fmt.Sprintf("%s[%v]", key, k.Interface()), rv.MapIndex(k).Interface())
		}
	case reflect.Slice, reflect.Array:
		if b, ok := value.([]byte); ok {
			values.Add(key, string(b))
			return
		}
		for i := 0; i < rv.Len(); i++ {
			addFormValue(values, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
	case reflect.Pointer:
		if rv.IsNil() {
			values.Add(key, "")
			return
		}
		addFormValue(values, key, rv.Elem().Interface())
	default:
		values.Add(key, fmt.Sprint(value))
	}
}
