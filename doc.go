// edk is the ETL Demo Kit! It contains a small toolkit and worked examples
// for a demonstration extract-transform-load job: the kind of pipeline one
// would normally run on Spark, reworked so it can move between a laptop and
// a managed batch/training service unchanged.
//
// Of principal importance in the EDK is the demo pipeline. Interfaces and
// basic implementations of each stage listed below are included at the root,
// and implementations which rely on other software (Kafka, S3, Parquet,
// Avro, BoltDB) live in sub-packages.
//
// 1. Source
//
//    An edk.Source is at the beginning of every run. The default source
//    generates synthetic employee records from a seed, but employees can
//    just as well come from CSV files, line-delimited JSON on disk or in S3
//    buckets, or a Kafka topic. Different Sources know how to interact with
//    the systems holding the data and hand it over one record at a time
//    behind one convenient interface. A Source does not manipulate the data
//    in any way - that job falls to the Parser.
//
// 2. Parser
//
//    The Parser turns whatever a Source emits (string maps from CSV,
//    interface maps from JSON, or already-typed records) into a validated
//    *edk.Employee. Keeping parsing separate from sourcing means one parser
//    can serve several sources, and the two can scale independently.
//
// 3. Transform
//
//    The record-level stage: a minimum-age filter, derivation of the age
//    group and salary band labels, and a summary reduction (headcount and
//    total payroll) which is logged but never persisted.
//
// 4. Tabulate and write
//
//    The enriched records are materialized as a columnar table (package
//    table), two grouped aggregations are computed over it (per department
//    and per fixed-width age bucket), and package output lands all three
//    tables as columnar files, atomically.
package edk
