// Package jsonstore persiste el estado en blobs JSON con clave, el análogo en
// disco de un almacén clave-valor local: cada colección se lee y se reemplaza
// completa, sin updates parciales ni lenguaje de consulta.
package jsonstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/pkg/logger"
)

// Store lee y escribe blobs JSON bajo <dir>/<prefix>_<clave>.json.
type Store struct {
	dir    string
	prefix string
	log    *logger.Logger
}

// New crea el almacén y asegura el directorio.
func New(dir, prefix string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, prefix: prefix, log: log}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, s.prefix+"_"+key+".json")
}

// Read deserializa el blob en v. Devuelve domain.ErrNotFound si el blob no
// existe; un blob corrupto también se reporta como inexistente para que el
// caller re-siembre, nunca tumba la carga.
func (s *Store) Read(key string, v any) error {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("blob corrupto, se descarta")
		return domain.ErrNotFound
	}
	return nil
}

// Write serializa v y reemplaza el blob completo. Escribe a un archivo
// temporal y renombra para que una caída a mitad de escritura no deje un blob
// a medias.
func (s *Store) Write(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, s.prefix+"_*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}
