package jsontree

import (
	"encoding/json"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fastjson"
)

var (
	smallJSON  = `{"id":42,"name":"answer","tags":["a","b","c"],"ok":true,"score":9.5,"extra":null}`
	mediumJSON = `{"records":[` +
		`{"event":"update","source":"worker-1","time":1535293043,"payload":{"keys":["alpha","beta","gamma"],"values":[1,2.5,3e2],"nested":{"deep":[[1],[2,3],[]]}},"readOnly":true},` +
		`{"event":"delete","source":"worker-2","time":1535293044,"payload":{"keys":[],"values":null,"nested":{"deep":[]}},"readOnly":false},` +
		`{"event":"create","source":"worker-3","time":1535293045,"payload":{"keys":["delta"],"values":[-0.25],"nested":{"deep":[[4,5,6]]}},"readOnly":false}` +
		`],"error":null,"count":3}`
)

func benchmark(src string) func(b *testing.B) {
	return func(b *testing.B) {
		v, tail, err := Parse(src)
		if err != nil {
			b.Errorf("Parse error: %s", err)
			return
		}
		if tail != "" {
			b.Errorf("Non empty tail: %q", tail)
			return
		}
		if v == nil {
			b.Errorf("Nil value")
			return
		}
		b.ReportAllocs()
		b.SetBytes(int64(len(src)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			Parse(src)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.Run("small.json", benchmark(smallJSON))
	b.Run("medium.json", benchmark(mediumJSON))
	b.Run("fastjson-medium.json", func(b *testing.B) {
		p := fastjson.Parser{}
		b.ReportAllocs()
		b.SetBytes(int64(len(mediumJSON)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v, err := p.Parse(mediumJSON)
			if err != nil {
				b.Error(err)
			}
			_ = v
		}
	})
	b.Run("encoding_json-medium.json", func(b *testing.B) {
		data := []byte(mediumJSON)
		var doc map[string]interface{}
		b.ReportAllocs()
		b.SetBytes(int64(len(mediumJSON)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := json.Unmarshal(data, &doc); err != nil {
				b.Error(err)
			}
		}
	})
	b.Run("jsoniter-medium.json", func(b *testing.B) {
		data := []byte(mediumJSON)
		var doc map[string]interface{}
		iter := jsoniter.ConfigDefault.BorrowIterator(data)
		b.ReportAllocs()
		b.SetBytes(int64(len(mediumJSON)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			iter.ResetBytes(data)
			iter.ReadVal(&doc)
			if err := iter.Error; err != nil {
				b.Error(err)
			}
		}
	})
}
