package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"

	"github.com/arklib/hstore/errx"
)

type Validator struct {
	*validator.Validate

	UT          *ut.UniversalTranslator
	DefaultLang string
}

func New(lang string) *Validator {
	vd := validator.New()
	vd.SetTagName("vd")

	// report config keys instead of go field names
	vd.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("config"), ",")
		if name != "" && name != "-" {
			return name
		}
		return field.Name
	})

	enLocale := en.New()
	zhLocale := zh.New()
	uni := ut.New(enLocale,
		enLocale,
		zhLocale,
	)
	enTrans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(vd, enTrans)

	zhTrans, _ := uni.GetTranslator("zh")
	_ = zhTranslations.RegisterDefaultTranslations(vd, zhTrans)

	if lang == "" {
		lang = "en"
	}
	return &Validator{
		Validate:    vd,
		UT:          uni,
		DefaultLang: lang,
	}
}

// Test validates a struct and returns the first failure translated to lang
// (an Accept-Language style list, e.g. "zh,en;q=0.8").
func (v *Validator) Test(value any, lang string) error {
	err := v.Struct(value)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return errx.New(err).WithCode(errx.InputErrCode)
	}

	locales := v.parseLocales(lang)
	trans, found := v.UT.FindTranslator(locales...)
	if !found {
		return errx.New(errs[0].Error(), err).WithCode(errx.InputErrCode)
	}
	return errx.New(errs[0].Translate(trans), err).WithCode(errx.InputErrCode)
}

func (v *Validator) parseLocales(lang string) []string {
	if lang == "" {
		return []string{v.DefaultLang}
	}

	var locales []string
	for _, value := range strings.Split(lang, ",") {
		locale := strings.Split(value, ";")
		locales = append(locales, strings.TrimSpace(locale[0]))
	}
	locales = append(locales, v.DefaultLang)
	return locales
}
