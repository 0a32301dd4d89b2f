package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

type client struct {
	http    *http.Client
	baseURL string
	out     io.Writer
}

func (c *client) get(path string) error {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) post(path string) error {
	return c.do(http.MethodPost, path, nil)
}

func (c *client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil)
}

func (c *client) postJSON(path string, body any) error {
	return c.doJSON(http.MethodPost, path, body)
}

func (c *client) putJSON(path string, body any) error {
	return c.doJSON(http.MethodPut, path, body)
}

func (c *client) doJSON(method, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(method, path, bytes.NewReader(b))
}

func (c *client) do(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	c.print(b)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

// print indente le JSON ; sinon recopie le corps tel quel.
func (c *client) print(b []byte) {
	if len(b) == 0 {
		return
	}
	var pretty any
	if err := json.Unmarshal(b, &pretty); err == nil {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(pretty)
		return
	}
	c.out.Write(b)
	c.out.Write([]byte("\n"))
}

// download enregistre le fichier exporté. 204 = liste vide, rien n'est écrit.
func (c *client) download(path, dest string) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		fmt.Fprintln(c.out, "Liste vide : rien à exporter.")
		return nil
	case resp.StatusCode >= 400:
		b, _ := io.ReadAll(resp.Body)
		c.print(b)
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if dest == "" {
		dest = attachmentName(resp.Header.Get("Content-Disposition"))
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("écriture de %s: %w", dest, err)
	}
	fmt.Fprintln(c.out, "Exporté dans", dest)
	return nil
}

// attachmentName garde seulement le nom de base proposé par le serveur :
// le fichier est toujours créé dans le répertoire courant.
func attachmentName(disposition string) string {
	const fallback = "canciones.json"
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return fallback
	}
	name := filepath.Base(filepath.Clean("/" + params["filename"]))
	if name == "/" || name == "." || name == ".." {
		return fallback
	}
	return name
}
