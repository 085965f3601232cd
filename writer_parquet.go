package orn2ttl

import (
	"github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// StatementRow is one statement in columnar form
type StatementRow struct {
	Subject    string `parquet:"name=subject, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=REQUIRED"`
	Predicate  string `parquet:"name=predicate, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=REQUIRED"`
	Object     string `parquet:"name=object, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=REQUIRED"`
	ObjectKind string `parquet:"name=object_kind, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=REQUIRED"`
	Datatype   string `parquet:"name=datatype, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=REQUIRED"`
}

func writeParquet(fname string, graph *Graph) error {
	fw, err := local.NewLocalFileWriter(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create parquet file")
	}

	pw, err := writer.NewParquetWriter(fw, new(StatementRow), 4)
	if err != nil {
		fw.Close()
		return errors.Wrap(err, "Can't prepare parquet writer")
	}
	for _, st := range graph.Statements() {
		row := StatementRow{
			Subject:    string(st.Subject),
			Predicate:  string(st.Predicate),
			Object:     st.Object.Value,
			ObjectKind: st.Object.Kind.String(),
			Datatype:   string(st.Object.Datatype),
		}
		if err = pw.Write(row); err != nil {
			fw.Close()
			return errors.Wrap(err, "Can't write statement row")
		}
	}
	if err = pw.WriteStop(); err != nil {
		fw.Close()
		return errors.Wrap(err, "Can't finish parquet file")
	}
	if err = fw.Close(); err != nil {
		return errors.Wrap(err, "Can't close parquet file")
	}
	return nil
}
