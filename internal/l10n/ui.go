// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package l10n

// UI text keys used by the frontend chrome.
const (
	UILoadingContent            = "loading_content"
	UIContentUnavailable        = "content_unavailable"
	UIDetailLocation            = "detail_location"
	UIDetailEmail               = "detail_email"
	UIDetailSocials             = "detail_socials"
	UIContactNameLabel          = "contact_name_label"
	UIContactNamePlaceholder    = "contact_name_placeholder"
	UIContactEmailLabel         = "contact_email_label"
	UIContactEmailPlaceholder   = "contact_email_placeholder"
	UIContactMessageLabel       = "contact_message_label"
	UIContactMessagePlaceholder = "contact_message_placeholder"
	UIContactSubmit             = "contact_submit"
	UIContactSending            = "contact_sending"
	UIContactSuccess            = "contact_success"
	UIContactErrorDefault       = "contact_error_default"
	UINewsletterPlaceholder     = "newsletter_placeholder"
	UINewsletterButton          = "newsletter_button"
	UIThemeLight                = "theme_light"
	UIThemeDark                 = "theme_dark"
	UILangEN                    = "lang_en"
	UILangRU                    = "lang_ru"
	UILangZH                    = "lang_zh"
)

// builtinUI holds the shipped UI strings per language. The "en" table is
// complete and defines the set of known keys.
var builtinUI = map[string]map[string]string{
	"en": {
		UILoadingContent:            "Loading content...",
		UIContentUnavailable:        "Content unavailable.",
		UIDetailLocation:            "Location",
		UIDetailEmail:               "Email",
		UIDetailSocials:             "Socials",
		UIContactNameLabel:          "Name",
		UIContactNamePlaceholder:    "Your name",
		UIContactEmailLabel:         "Email",
		UIContactEmailPlaceholder:   "your@email.com",
		UIContactMessageLabel:       "Message",
		UIContactMessagePlaceholder: "Tell me about your project...",
		UIContactSubmit:             "Send message",
		UIContactSending:            "Sending...",
		UIContactSuccess:            "Message sent. Thank you.",
		UIContactErrorDefault:       "Could not send message.",
		UINewsletterPlaceholder:     "Email address",
		UINewsletterButton:          "Join",
		UIThemeLight:                "Light",
		UIThemeDark:                 "Dark",
		UILangEN:                    "EN",
		UILangRU:                    "RU",
		UILangZH:                    "中文",
	},
	"ru": {
		UILoadingContent:            "Загрузка контента...",
		UIContentUnavailable:        "Контент недоступен.",
		UIDetailLocation:            "Локация",
		UIDetailEmail:               "Email",
		UIDetailSocials:             "Соцсети",
		UIContactNameLabel:          "Имя",
		UIContactNamePlaceholder:    "Ваше имя",
		UIContactEmailLabel:         "Email",
		UIContactEmailPlaceholder:   "your@email.com",
		UIContactMessageLabel:       "Сообщение",
		UIContactMessagePlaceholder: "Расскажите о вашем проекте...",
		UIContactSubmit:             "Отправить",
		UIContactSending:            "Отправка...",
		UIContactSuccess:            "Сообщение отправлено. Спасибо.",
		UIContactErrorDefault:       "Не удалось отправить сообщение.",
		UINewsletterPlaceholder:     "Email адрес",
		UINewsletterButton:          "Подписаться",
		UIThemeLight:                "Светлая",
		UIThemeDark:                 "Тёмная",
		UILangEN:                    "EN",
		UILangRU:                    "RU",
		UILangZH:                    "中文",
	},
	"zh": {
		UILoadingContent:            "正在加载内容...",
		UIContentUnavailable:        "内容不可用。",
		UIDetailLocation:            "地点",
		UIDetailEmail:               "邮箱",
		UIDetailSocials:             "社交",
		UIContactNameLabel:          "姓名",
		UIContactNamePlaceholder:    "你的姓名",
		UIContactEmailLabel:         "邮箱",
		UIContactEmailPlaceholder:   "your@email.com",
		UIContactMessageLabel:       "留言",
		UIContactMessagePlaceholder: "请介绍一下你的项目...",
		UIContactSubmit:             "发送消息",
		UIContactSending:            "发送中...",
		UIContactSuccess:            "消息已发送。谢谢。",
		UIContactErrorDefault:       "发送失败。",
		UINewsletterPlaceholder:     "邮箱地址",
		UINewsletterButton:          "订阅",
		UIThemeLight:                "浅色",
		UIThemeDark:                 "深色",
		UILangEN:                    "EN",
		UILangRU:                    "RU",
		UILangZH:                    "中文",
	},
}

// UIKeys returns the known UI text keys.
func UIKeys() []string {
	keys := make([]string, 0, len(builtinUI["en"]))
	for k := range builtinUI["en"] {
		keys = append(keys, k)
	}
	return keys
}

// UITexts resolves the UI dictionary for lang.
//
// Layers, later wins: the built-in default-language table, the stored
// overrides for the default language, then (when lang is not the default) the
// built-in table for lang and the stored overrides for lang. Blank and
// non-string override values are skipped, so every known key keeps a string
// even for languages nobody configured.
func UITexts(overrides map[string]any, lang, defaultLang string) map[string]string {
	out := make(map[string]string, len(builtinUI["en"]))
	for k, v := range builtinUI["en"] {
		out[k] = v
	}

	layer := func(code string) {
		for k, v := range builtinUI[code] {
			out[k] = v
		}
		stored, ok := overrides[code].(map[string]any)
		if !ok {
			return
		}
		for k, v := range stored {
			if s, ok := v.(string); ok && !isBlank(s) {
				out[k] = s
			}
		}
	}

	layer(defaultLang)
	if lang != defaultLang {
		layer(lang)
	}
	return out
}
