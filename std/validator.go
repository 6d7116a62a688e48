package std

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

const (
	// LocaleEnglish 英文语言码
	LocaleEnglish = "en"
	// LocaleChinese 中文语言码
	LocaleChinese = "zh"
)

// FieldError 字段级错误信息
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 封装后的校验错误
type ValidationError struct {
	fields []FieldError
	detail string
	err    error
}

func (my *ValidationError) Error() string {
	if my.detail != "" {
		return my.detail
	}
	if my.err != nil {
		return my.err.Error()
	}
	return "参数校验失败"
}

func (my *ValidationError) Unwrap() error { return my.err }

// Fields 返回字段级错误
func (my *ValidationError) Fields() []FieldError { return my.fields }

// Extensions 字段名到错误信息，合并到响应的extensions
func (my *ValidationError) Extensions() Extension {
	ext := make(Extension, len(my.fields))
	for _, f := range my.fields {
		ext[f.Field] = f.Message
	}
	return ext
}

// Validator 公共校验器，封装了 go-playground/validator 并支持多语言翻译
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator 创建校验器实例，默认使用简体中文翻译
func NewValidator() (*Validator, error) {
	return NewValidatorWithLocale(LocaleChinese)
}

// NewValidatorWithLocale 创建指定语言的校验器实例
func NewValidatorWithLocale(locale string) (*Validator, error) {
	enLocale, zhLocale := en.New(), zh.New()
	universal := ut.New(enLocale, enLocale, zhLocale)

	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}

	// 错误信息里的字段名使用json标签，其次mapstructure标签
	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	registers := map[string]func(*validator.Validate, ut.Translator) error{
		LocaleEnglish: enTranslations.RegisterDefaultTranslations,
		LocaleChinese: zhTranslations.RegisterDefaultTranslations,
	}
	register, ok := registers[locale]
	if !ok {
		return nil, fmt.Errorf("validator: 未支持的语言代码 %q", locale)
	}
	translator, _ := universal.GetTranslator(locale)
	if err := register(v.validate, translator); err != nil {
		return nil, fmt.Errorf("validator: 注册%s翻译失败: %w", locale, err)
	}
	v.translator = translator
	return v, nil
}

// Locale 当前使用的语言
func (my *Validator) Locale() string {
	return my.translator.Locale()
}

// Check 执行结构体校验，失败时返回*ValidationError
func (my *Validator) Check(payload any) error {
	err := my.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &ValidationError{detail: err.Error(), err: err}
	}
	fields := make([]FieldError, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		message := e.Translate(my.translator)
		fields = append(fields, FieldError{Field: e.Field(), Message: message})
		messages = append(messages, message)
	}
	return &ValidationError{fields: fields, detail: strings.Join(messages, "; "), err: err}
}
