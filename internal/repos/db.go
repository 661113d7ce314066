package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo artisans/products if the DB is empty so the home and
	// catalog pages have content on first run.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Artisans
CREATE TABLE IF NOT EXISTS artisans(
  id TEXT PRIMARY KEY,
  user_id TEXT,
  name TEXT NOT NULL,
  city TEXT,
  state TEXT,
  bio TEXT,
  avatar_url TEXT,
  phone TEXT,
  is_phone_verified INTEGER NOT NULL DEFAULT 0,
  rating REAL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_artisans_rating     ON artisans(rating);
CREATE INDEX IF NOT EXISTS idx_artisans_created_at ON artisans(created_at);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  artisan_id TEXT NOT NULL REFERENCES artisans(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  image_url TEXT,
  category TEXT NOT NULL,
  rating REAL,
  reviews_cnt INTEGER,
  in_stock INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_artisan    ON products(artisan_id);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Seller verifications
CREATE TABLE IF NOT EXISTS seller_verifications(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  artisan_id TEXT REFERENCES artisans(id) ON DELETE SET NULL,
  document_url TEXT,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','approved','rejected')),
  notes TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  reviewed_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_verifications_status ON seller_verifications(status);

-- Carts
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cart_items(
  cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);

-- Followed artisans, keyed by browser session
CREATE TABLE IF NOT EXISTS favorites(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS favorite_items(
  favorite_id TEXT NOT NULL REFERENCES favorites(id) ON DELETE CASCADE,
  artisan_id  TEXT NOT NULL REFERENCES artisans(id) ON DELETE RESTRICT,
  created_at  TEXT,
  PRIMARY KEY (favorite_id, artisan_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM artisans`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo artisans/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO artisans(id,name,city,state,bio,phone,is_phone_verified,rating,created_at) VALUES
	  ('art-meera','Meera Devi','Jaipur','Rajasthan','Third-generation block printer.','9876543210',1,4.8,'2024-11-02T09:00:00Z'),
	  ('art-raghu','Raghu Nair','Kochi','Kerala','Coconut-wood carver and boat builder.','9812345670',1,4.6,'2024-12-15T09:00:00Z'),
	  ('art-sita','Sita Kumari','Bhuj','Gujarat','Terracotta and clay work.','9898989898',0,4.2,'2025-01-20T09:00:00Z')`)

	tx.MustExec(`INSERT INTO products(id,artisan_id,name,description,price,category,rating,reviews_cnt,in_stock,created_at) VALUES
	  ('prd-clay-pot','art-sita','Clay Pot','Hand-thrown terracotta pot',500,'Pottery',4.5,23,1,'2025-02-01T10:00:00Z'),
	  ('prd-silk-scarf','art-meera','Silk Scarf','Block-printed mulberry silk',1500,'Textiles',NULL,NULL,1,'2025-02-10T10:00:00Z'),
	  ('prd-bandhani','art-meera','Bandhani Dupatta','Tie-dye cotton dupatta',1100,'Textiles',4.7,41,1,'2025-03-05T10:00:00Z'),
	  ('prd-teak-bowl','art-raghu','Teak Serving Bowl','Carved from reclaimed teak',900,'Woodwork',4.9,12,1,'2025-03-18T10:00:00Z'),
	  ('prd-brass-lamp','art-raghu','Brass Oil Lamp','Traditional nilavilakku',2200,'Metalwork',3.9,7,0,'2025-04-02T10:00:00Z'),
	  ('prd-diya-set','art-sita','Diya Set of Six','Festival clay lamps',300,'Pottery',4.1,56,1,'2025-04-20T10:00:00Z')`)

	return tx.Commit()
}
