package i18n

import (
	"reflect"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want Language
	}{
		{map[string]string{"LANG": "zh_CN.UTF-8"}, Chinese},
		{map[string]string{"LANG": "en_US.UTF-8"}, English},
		{map[string]string{"LC_ALL": "zh_TW.UTF-8"}, Chinese},
		{map[string]string{}, English},
	}
	for _, tt := range tests {
		for _, k := range []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"} {
			t.Setenv(k, tt.env[k])
		}
		if got := DetectLanguage(); got != tt.want {
			t.Errorf("DetectLanguage() with %v = %s, want %s", tt.env, got, tt.want)
		}
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(English)

	SetLanguage(Chinese)
	if !IsChineseEnvironment() || I18nMsg.Menu.Goodbye != ChineseMenuMessages.Goodbye {
		t.Error("Chinese messages not selected")
	}
	SetLanguage(English)
	if I18nMsg.Menu.Goodbye != "Goodbye!" {
		t.Error("English messages not selected")
	}
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{"en": English, "ZH": Chinese, " chinese ": Chinese} {
		if got, ok := ParseLanguage(in); !ok || got != want {
			t.Errorf("ParseLanguage(%q) = %s, %v", in, got, ok)
		}
	}
	if _, ok := ParseLanguage("fr"); ok {
		t.Error("ParseLanguage(fr) accepted")
	}
}

// every message must be translated
func TestMessagesComplete(t *testing.T) {
	for _, set := range []AllMessages{EnglishAllMessages, ChineseAllMessages} {
		v := reflect.ValueOf(set)
		for i := 0; i < v.NumField(); i++ {
			group := v.Field(i)
			for j := 0; j < group.NumField(); j++ {
				if group.Field(j).String() == "" {
					t.Errorf("%s.%s is empty", v.Type().Field(i).Name, group.Type().Field(j).Name)
				}
			}
		}
	}
}
